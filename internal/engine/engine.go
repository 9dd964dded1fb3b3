package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"jalmitra/internal/grievance"
	"jalmitra/internal/intent"
	"jalmitra/internal/lang"
)

// Answerer resolves free-text questions. The RAG pipeline satisfies it.
type Answerer interface {
	Answer(ctx context.Context, query, language string) (string, error)
}

// GrievanceLookup finds registered grievances by identifier.
type GrievanceLookup interface {
	ByID(ctx context.Context, id string) (*grievance.Record, error)
	ByMobile(ctx context.Context, mobile string) ([]grievance.Record, error)
}

// RatingSink persists submitted service ratings.
type RatingSink interface {
	Save(ctx context.Context, sessionID string, score int, language string) error
}

// Turn is the result of processing one user input.
type Turn struct {
	Reply    string `json:"reply"`
	Language string `json:"language"`
	Stage    Stage  `json:"stage"`
}

// Engine is the dialogue orchestrator. Scripted stage transitions are
// handled here; anything that looks like a real question goes to the
// answering pipeline, gated by the per-session rate limiter.
type Engine struct {
	store      Store
	limiter    *RateLimiter
	answerer   Answerer
	grievances GrievanceLookup
	ratings    RatingSink
}

// New wires an engine. grievances and ratings may be nil when the
// corresponding backends are not deployed; the flows degrade to fixed
// replies.
func New(store Store, limiter *RateLimiter, answerer Answerer, grievances GrievanceLookup, ratings RatingSink) (*Engine, error) {
	if store == nil {
		return nil, errors.New("engine: nil session store")
	}
	if limiter == nil {
		return nil, errors.New("engine: nil rate limiter")
	}
	if answerer == nil {
		return nil, errors.New("engine: nil answerer")
	}
	return &Engine{
		store:      store,
		limiter:    limiter,
		answerer:   answerer,
		grievances: grievances,
		ratings:    ratings,
	}, nil
}

// Inputs of at most this many words at a yes/no prompt are treated as a
// failed scripted answer and re-prompted; longer ones are routed to the
// answering pipeline as genuine questions.
const shortReplyWords = 2

// ProcessTurn advances the session with one user input and returns the
// reply. All expected failures become user-facing text; the error return
// signals storage or programmer faults only.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, input, language string) (Turn, error) {
	sess, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return Turn{}, err
	}

	language, unsupported := e.resolveLanguage(sess, input, language)
	if unsupported {
		return e.finish(ctx, sess, lang.Message(lang.MsgUnsupportedLang, sess.Language))
	}
	sess.Language = language

	input = strings.TrimSpace(input)
	if input == "" {
		// An empty opener on a fresh session starts the scripted flow.
		if sess.Stage == StageInitial {
			sess.Stage = StageAwaitingInitialResponse
			return e.finish(ctx, sess, lang.Message(lang.MsgWelcome, language))
		}
		return e.finish(ctx, sess, lang.Message(lang.MsgEmptyInput, language))
	}

	// Status checks outrank every stage.
	if intent.IsStatusQuery(input, language) {
		return e.handleStatusIntent(ctx, sess, input)
	}

	// A feedback mention jumps the flow from anywhere.
	if intent.IsFeedback(input, language) && sess.Stage != StageFeedbackQuestion {
		sess.Stage = StageFeedbackQuestion
		return e.finish(ctx, sess, lang.Message(lang.MsgFeedbackQuestion, language))
	}

	if sess.Stage == StageWaitingForIdentifier {
		return e.handleIdentifier(ctx, sess, input)
	}

	switch sess.Stage {
	case StageInitial:
		return e.handleInitial(ctx, sess, input)
	case StageAwaitingInitialResponse:
		return e.handleAwaitingInitial(ctx, sess, input)
	case StageFeedbackQuestion:
		return e.handleFeedbackQuestion(ctx, sess, input)
	case StageRatingRequest:
		return e.handleRating(ctx, sess, input)
	default:
		// registration_info_shown, status_shown, completed: free
		// conversation.
		return e.freeText(ctx, sess, input)
	}
}

// EndSession removes all state for a session.
func (e *Engine) EndSession(ctx context.Context, sessionID string) error {
	e.limiter.Forget(sessionID)
	return e.store.Delete(ctx, sessionID)
}

func (e *Engine) loadOrCreate(ctx context.Context, id string) (*Session, error) {
	sess, err := e.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return &Session{ID: id, Stage: StageInitial, Language: lang.English}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// resolveLanguage picks the turn language: an explicit supported request
// wins, an explicit unsupported one is refused, otherwise detection from
// the input text.
func (e *Engine) resolveLanguage(sess *Session, input, requested string) (string, bool) {
	if requested != "" {
		if !lang.Supported(requested) {
			return "", true
		}
		return requested, false
	}
	if strings.TrimSpace(input) == "" {
		return sess.Language, false
	}
	return lang.Detect(input), false
}

func (e *Engine) finish(ctx context.Context, sess *Session, reply string) (Turn, error) {
	sess.LastActivity = time.Now()
	if err := e.store.Put(ctx, sess); err != nil {
		return Turn{}, fmt.Errorf("save session: %w", err)
	}
	return Turn{Reply: reply, Language: sess.Language, Stage: sess.Stage}, nil
}

func (e *Engine) handleInitial(ctx context.Context, sess *Session, input string) (Turn, error) {
	language := sess.Language
	if intent.IsRegistration(input, language) {
		sess.Stage = StageRegistrationInfoShown
		return e.finish(ctx, sess, lang.Message(lang.MsgRegistrationInfo, language))
	}
	switch intent.YesNo(input, language) {
	case intent.Yes:
		sess.Stage = StageRegistrationInfoShown
		return e.finish(ctx, sess, lang.Message(lang.MsgRegistrationInfo, language))
	case intent.No:
		sess.Stage = StageFeedbackQuestion
		return e.finish(ctx, sess, lang.Message(lang.MsgFeedbackQuestion, language))
	}
	if key, ok := intent.Greeting(input, language); ok {
		greeting := lang.Message(key, language)
		sess.Stage = StageAwaitingInitialResponse
		return e.finish(ctx, sess, greeting+"\n\n"+lang.Message(lang.MsgWelcome, language))
	}
	if len(strings.Fields(input)) > shortReplyWords {
		// The very first message is already a question; answer it and
		// then offer the scripted flow.
		return e.freeText(ctx, sess, input)
	}
	sess.Stage = StageAwaitingInitialResponse
	return e.finish(ctx, sess, lang.Message(lang.MsgWelcome, language))
}

func (e *Engine) handleAwaitingInitial(ctx context.Context, sess *Session, input string) (Turn, error) {
	language := sess.Language
	switch intent.YesNo(input, language) {
	case intent.Yes:
		sess.Stage = StageRegistrationInfoShown
		return e.finish(ctx, sess, lang.Message(lang.MsgRegistrationInfo, language))
	case intent.No:
		sess.Stage = StageFeedbackQuestion
		return e.finish(ctx, sess, lang.Message(lang.MsgFeedbackQuestion, language))
	}
	if len(strings.Fields(input)) <= shortReplyWords {
		return e.finish(ctx, sess, lang.Message(lang.MsgWelcome, language))
	}
	return e.freeText(ctx, sess, input)
}

func (e *Engine) handleFeedbackQuestion(ctx context.Context, sess *Session, input string) (Turn, error) {
	language := sess.Language
	switch intent.YesNo(input, language) {
	case intent.Yes:
		sess.Stage = StageRatingRequest
		return e.finish(ctx, sess, lang.Message(lang.MsgRatingRequest, language))
	case intent.No:
		sess.Stage = StageCompleted
		return e.finish(ctx, sess, lang.Message(lang.MsgGoodbye, language))
	}
	if len(strings.Fields(input)) <= shortReplyWords {
		return e.finish(ctx, sess, lang.Message(lang.MsgFeedbackQuestion, language))
	}
	return e.freeText(ctx, sess, input)
}

// parseRating accepts the first 1-5 number found in the input, so "4
// stars" and "रेटिंग 5" both work.
func parseRating(input string) (int, bool) {
	for _, f := range strings.FieldsFunc(input, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		if n, err := strconv.Atoi(f); err == nil && n >= 1 && n <= 5 {
			return n, true
		}
	}
	return 0, false
}

func (e *Engine) handleRating(ctx context.Context, sess *Session, input string) (Turn, error) {
	language := sess.Language
	score, ok := parseRating(input)
	if !ok {
		return e.finish(ctx, sess, lang.Message(lang.MsgRatingInvalid, language))
	}
	if e.ratings != nil {
		if err := e.ratings.Save(ctx, sess.ID, score, language); err != nil {
			log.Printf("[Engine] Failed to save rating for session %s: %v", sess.ID, err)
		}
	}
	sess.Stage = StageCompleted
	return e.finish(ctx, sess, lang.Message(lang.MsgRatingThanks, language))
}

func (e *Engine) handleStatusIntent(ctx context.Context, sess *Session, input string) (Turn, error) {
	// An identifier embedded in the same message resolves immediately.
	if value, kind, ok := intent.Resolve(input); ok {
		return e.lookupStatus(ctx, sess, value, kind)
	}
	sess.Stage = StageWaitingForIdentifier
	return e.finish(ctx, sess, lang.Message(lang.MsgAskIdentifier, sess.Language))
}

func (e *Engine) handleIdentifier(ctx context.Context, sess *Session, input string) (Turn, error) {
	value, kind, ok := intent.Resolve(input)
	if !ok {
		// Stage is kept so the citizen can try again.
		return e.finish(ctx, sess, lang.Message(lang.MsgBadIdentifier, sess.Language))
	}
	return e.lookupStatus(ctx, sess, value, kind)
}

func (e *Engine) lookupStatus(ctx context.Context, sess *Session, value string, kind intent.Kind) (Turn, error) {
	language := sess.Language
	if e.grievances == nil {
		sess.Stage = StageWaitingForIdentifier
		return e.finish(ctx, sess, lang.Message(lang.MsgStatusNotFound, language))
	}

	var reply string
	var err error
	switch kind {
	case intent.KindMobile:
		var recs []grievance.Record
		recs, err = e.grievances.ByMobile(ctx, value)
		if err == nil {
			reply = grievance.FormatStatusList(recs, language)
		}
	default:
		var rec *grievance.Record
		rec, err = e.grievances.ByID(ctx, value)
		if err == nil {
			reply = grievance.FormatStatus(rec, language)
		}
	}

	if errors.Is(err, grievance.ErrNotFound) {
		sess.Stage = StageWaitingForIdentifier
		return e.finish(ctx, sess, lang.Message(lang.MsgStatusNotFound, language))
	}
	if err != nil {
		log.Printf("[Engine] Grievance lookup failed for session %s: %v", sess.ID, err)
		sess.Stage = StageWaitingForIdentifier
		return e.finish(ctx, sess, lang.Message(lang.MsgGenericError, language))
	}
	sess.Stage = StageStatusShown
	return e.finish(ctx, sess, reply)
}

// freeText answers an off-script input through the pipeline. Only this
// path consumes rate-limiter budget.
func (e *Engine) freeText(ctx context.Context, sess *Session, input string) (Turn, error) {
	language := sess.Language
	if key, ok := intent.Greeting(input, language); ok {
		return e.finish(ctx, sess, lang.Message(key, language))
	}
	if !e.limiter.Allow(sess.ID) {
		return e.finish(ctx, sess, lang.Message(lang.MsgRateWait, language))
	}
	answer, err := e.answerer.Answer(ctx, input, language)
	if err != nil {
		log.Printf("[Engine] Pipeline error for session %s: %v", sess.ID, err)
		answer = lang.Message(lang.MsgGenericError, language)
	}
	return e.finish(ctx, sess, answer)
}
