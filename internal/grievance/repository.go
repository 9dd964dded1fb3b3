package grievance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no grievance matches the identifier.
var ErrNotFound = errors.New("grievance: not found")

// Repository queries the grievance table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ByID finds a grievance by its exact ID, falling back to a substring
// match because citizens often type a partial ID from an SMS.
func (r *Repository) ByID(ctx context.Context, id string) (*Record, error) {
	id = strings.TrimSpace(id)
	var rec Record
	err := r.db.WithContext(ctx).Where("grievance_id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.WithContext(ctx).
			Where("grievance_id LIKE ?", "%"+id+"%").
			First(&rec).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup grievance %q: %w", id, err)
	}
	return &rec, nil
}

// ByMobile returns the most recent grievances registered from a mobile
// number, newest first, at most three.
func (r *Repository) ByMobile(ctx context.Context, mobile string) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("mobile_number = ?", strings.TrimSpace(mobile)).
		Order("grievance_logged_date DESC").
		Limit(3).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("lookup grievances for mobile: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs, nil
}
