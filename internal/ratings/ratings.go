// Package ratings stores the 1-5 service ratings collected at the end of
// the feedback flow and exports them for review.
package ratings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrInvalidScore rejects ratings outside the 1-5 scale.
var ErrInvalidScore = errors.New("ratings: score must be between 1 and 5")

// Rating is one submitted service rating.
type Rating struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID string         `gorm:"index;size:64" json:"session_id"`
	Score     int            `json:"score"`
	Language  string         `gorm:"size:8" json:"language"`
	Details   datatypes.JSON `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store persists ratings.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save records a rating for a session.
func (s *Store) Save(ctx context.Context, sessionID string, score int, language string) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}
	r := Rating{
		SessionID: sessionID,
		Score:     score,
		Language:  language,
		Details:   datatypes.JSON(fmt.Sprintf(`{"source":"chat","language":%q}`, language)),
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

// List returns all ratings, newest first.
func (s *Store) List(ctx context.Context) ([]Rating, error) {
	var out []Rating
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return out, nil
}

// WriteCSV renders ratings as a CSV report.
func WriteCSV(w io.Writer, ratings []Rating) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"session_id", "score", "language", "created_at"}); err != nil {
		return err
	}
	for _, r := range ratings {
		row := []string{
			r.SessionID,
			strconv.Itoa(r.Score),
			r.Language,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
