package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jalmitra/internal/grievance"
	"jalmitra/internal/lang"
)

type stubAnswerer struct {
	calls int
	reply string
	err   error
}

func (s *stubAnswerer) Answer(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubLookup struct {
	byID     map[string]*grievance.Record
	byMobile map[string][]grievance.Record
}

func (s *stubLookup) ByID(_ context.Context, id string) (*grievance.Record, error) {
	if r, ok := s.byID[id]; ok {
		return r, nil
	}
	return nil, grievance.ErrNotFound
}

func (s *stubLookup) ByMobile(_ context.Context, m string) ([]grievance.Record, error) {
	if rs, ok := s.byMobile[m]; ok {
		return rs, nil
	}
	return nil, grievance.ErrNotFound
}

type stubRatings struct {
	saved []int
}

func (s *stubRatings) Save(_ context.Context, _ string, score int, _ string) error {
	s.saved = append(s.saved, score)
	return nil
}

func newTestEngine(t *testing.T, answerer Answerer, lookup GrievanceLookup, sink RatingSink) (*Engine, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	e, err := New(store, NewRateLimiter(time.Millisecond), answerer, lookup, sink)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e, store
}

func setStage(t *testing.T, store *MemoryStore, id string, stage Stage, language string) {
	t.Helper()
	if err := store.Put(context.Background(), &Session{ID: id, Stage: stage, Language: language}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func TestFirstTurnShowsWelcome(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	turn, err := e.ProcessTurn(context.Background(), "s1", "ok", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageRegistrationInfoShown && turn.Stage != StageAwaitingInitialResponse {
		// "ok" classifies as yes; either transition is scripted.
		t.Fatalf("unexpected stage %s", turn.Stage)
	}
}

func TestEmptyOpenerStartsScript(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	turn, err := e.ProcessTurn(context.Background(), "s1", "", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageAwaitingInitialResponse {
		t.Errorf("expected awaiting_initial_response, got %s", turn.Stage)
	}
	if turn.Reply != lang.Message(lang.MsgWelcome, "en") {
		t.Errorf("expected welcome script, got %q", turn.Reply)
	}

	// An empty message mid-conversation is just nagged, not restarted.
	turn, err = e.ProcessTurn(context.Background(), "s1", "", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Reply != lang.Message(lang.MsgEmptyInput, "en") {
		t.Errorf("expected empty-input message, got %q", turn.Reply)
	}
}

func TestGreetingFirstTurn(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	turn, err := e.ProcessTurn(context.Background(), "s1", "hello", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageAwaitingInitialResponse {
		t.Errorf("expected awaiting_initial_response, got %s", turn.Stage)
	}
	if !strings.Contains(turn.Reply, lang.Message(lang.MsgWelcome, "en")) {
		t.Errorf("expected the welcome script in reply: %q", turn.Reply)
	}
}

func TestYesShowsRegistrationInfo(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	setStage(t, store, "s1", StageAwaitingInitialResponse, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "yes", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageRegistrationInfoShown {
		t.Errorf("expected registration_info_shown, got %s", turn.Stage)
	}
	// Both registration channels must appear.
	if !strings.Contains(turn.Reply, "portal") || !strings.Contains(turn.Reply, "104/102") {
		t.Errorf("expected both registration methods in reply: %q", turn.Reply)
	}
}

func TestNoAdvancesToFeedbackQuestion(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	setStage(t, store, "s1", StageAwaitingInitialResponse, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "no", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageFeedbackQuestion {
		t.Errorf("expected feedback_question, got %s", turn.Stage)
	}
}

func TestStatusIntentWithEmbeddedIDAtAnyStage(t *testing.T) {
	lookup := &stubLookup{byID: map[string]*grievance.Record{
		"G-12safeg7678": {GrievanceID: "G-12safeg7678", Status: "In Progress"},
	}}
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, lookup, nil)

	for _, stage := range []Stage{StageAwaitingInitialResponse, StageFeedbackQuestion, StageCompleted} {
		setStage(t, store, "s1", stage, "en")
		turn, err := e.ProcessTurn(context.Background(), "s1", "check my grievance status G-12safeg7678", "en")
		if err != nil {
			t.Fatalf("ProcessTurn failed at stage %s: %v", stage, err)
		}
		if turn.Stage != StageStatusShown {
			t.Errorf("stage %s: expected status_shown, got %s", stage, turn.Stage)
		}
		if !strings.Contains(turn.Reply, "In Progress") {
			t.Errorf("stage %s: expected status in reply, got %q", stage, turn.Reply)
		}
	}
}

func TestStatusIntentWithoutIDAsksForIdentifier(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnswerer{reply: "x"}, &stubLookup{}, nil)
	turn, err := e.ProcessTurn(context.Background(), "s1", "check my grievance status", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageWaitingForIdentifier {
		t.Errorf("expected waiting_for_identifier, got %s", turn.Stage)
	}
	if turn.Reply != lang.Message(lang.MsgAskIdentifier, "en") {
		t.Errorf("expected identifier prompt, got %q", turn.Reply)
	}
}

func TestInvalidIdentifierKeepsStage(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, &stubLookup{}, nil)
	setStage(t, store, "s1", StageWaitingForIdentifier, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "12345", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageWaitingForIdentifier {
		t.Errorf("expected stage kept, got %s", turn.Stage)
	}
	if turn.Reply != lang.Message(lang.MsgBadIdentifier, "en") {
		t.Errorf("expected bad-identifier prompt, got %q", turn.Reply)
	}
}

func TestMobileIdentifierListsGrievances(t *testing.T) {
	lookup := &stubLookup{byMobile: map[string][]grievance.Record{
		"9876543210": {
			{GrievanceID: "G-1001", Status: "Resolved"},
			{GrievanceID: "G-1002", Status: "Pending"},
		},
	}}
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, lookup, nil)
	setStage(t, store, "s1", StageWaitingForIdentifier, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "9876543210", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageStatusShown {
		t.Errorf("expected status_shown, got %s", turn.Stage)
	}
	if !strings.Contains(turn.Reply, "G-1001") || !strings.Contains(turn.Reply, "G-1002") {
		t.Errorf("expected both grievances listed, got %q", turn.Reply)
	}
}

func TestUnknownIdentifierNotFound(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, &stubLookup{}, nil)
	setStage(t, store, "s1", StageWaitingForIdentifier, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "G-99unknown99", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageWaitingForIdentifier {
		t.Errorf("expected stage kept on not-found, got %s", turn.Stage)
	}
	if turn.Reply != lang.Message(lang.MsgStatusNotFound, "en") {
		t.Errorf("expected not-found message, got %q", turn.Reply)
	}
}

func TestFeedbackKeywordForceJumps(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	setStage(t, store, "s1", StageRegistrationInfoShown, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "I want to give feedback", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageFeedbackQuestion {
		t.Errorf("expected feedback_question, got %s", turn.Stage)
	}
}

func TestRatingFlow(t *testing.T) {
	sink := &stubRatings{}
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, sink)
	setStage(t, store, "s1", StageFeedbackQuestion, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "yes", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageRatingRequest {
		t.Fatalf("expected rating_request, got %s", turn.Stage)
	}

	// Invalid rating re-prompts without leaving the stage.
	turn, _ = e.ProcessTurn(context.Background(), "s1", "ten", "en")
	if turn.Stage != StageRatingRequest {
		t.Fatalf("expected rating_request kept, got %s", turn.Stage)
	}

	turn, err = e.ProcessTurn(context.Background(), "s1", "4", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageCompleted {
		t.Errorf("expected completed, got %s", turn.Stage)
	}
	if len(sink.saved) != 1 || sink.saved[0] != 4 {
		t.Errorf("expected rating 4 saved, got %v", sink.saved)
	}
}

func TestFreeTextRoutesToAnswerer(t *testing.T) {
	answerer := &stubAnswerer{reply: "The mission provides tap water."}
	e, store := newTestEngine(t, answerer, nil, nil)
	setStage(t, store, "s1", StageCompleted, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "what is the jal jeevan mission", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Reply != answerer.reply {
		t.Errorf("expected pipeline answer, got %q", turn.Reply)
	}
	if answerer.calls != 1 {
		t.Errorf("expected one pipeline call, got %d", answerer.calls)
	}
}

func TestScriptedRepliesNeverRateLimited(t *testing.T) {
	store := NewMemoryStore()
	e, err := New(store, NewRateLimiter(time.Hour), &stubAnswerer{reply: "x"}, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	setStage(t, store, "s1", StageCompleted, "en")

	// Burn the rate budget with one free-text question.
	if _, err := e.ProcessTurn(context.Background(), "s1", "what schemes cover borewell repair", "en"); err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	// Scripted status flow still answers.
	turn, err := e.ProcessTurn(context.Background(), "s1", "check my grievance status", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Reply != lang.Message(lang.MsgAskIdentifier, "en") {
		t.Errorf("scripted reply was rate limited: %q", turn.Reply)
	}
}

func TestRateLimitedFreeTextGetsWaitMessage(t *testing.T) {
	answerer := &stubAnswerer{reply: "x"}
	store := NewMemoryStore()
	e, err := New(store, NewRateLimiter(time.Hour), answerer, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	setStage(t, store, "s1", StageCompleted, "en")

	if _, err := e.ProcessTurn(context.Background(), "s1", "first question about water schemes", "en"); err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	turn, err := e.ProcessTurn(context.Background(), "s1", "second question about water schemes", "en")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Reply != lang.Message(lang.MsgRateWait, "en") {
		t.Errorf("expected wait message, got %q", turn.Reply)
	}
	if answerer.calls != 1 {
		t.Errorf("expected a single pipeline call, got %d", answerer.calls)
	}
}

func TestUnsupportedLanguageRefused(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	turn, err := e.ProcessTurn(context.Background(), "s1", "hola", "es")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Stage != StageInitial {
		t.Errorf("unsupported language must not advance the stage, got %s", turn.Stage)
	}
	if turn.Reply != lang.Message(lang.MsgUnsupportedLang, "en") {
		t.Errorf("expected unsupported-language notice, got %q", turn.Reply)
	}
}

func TestLanguageDetectedWhenNotSpecified(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "ठीक"}, nil, nil)
	setStage(t, store, "s1", StageAwaitingInitialResponse, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "हाँ", "")
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}
	if turn.Language != "hi" {
		t.Errorf("expected detected language hi, got %s", turn.Language)
	}
	if turn.Reply != lang.Message(lang.MsgRegistrationInfo, "hi") {
		t.Errorf("expected Hindi registration info, got %q", turn.Reply)
	}
}

func TestPipelineErrorBecomesGenericMessage(t *testing.T) {
	answerer := &stubAnswerer{err: errors.New("boom")}
	e, store := newTestEngine(t, answerer, nil, nil)
	setStage(t, store, "s1", StageCompleted, "en")

	turn, err := e.ProcessTurn(context.Background(), "s1", "a question about schemes please", "en")
	if err != nil {
		t.Fatalf("expected expected-failure conversion, got %v", err)
	}
	if turn.Reply != lang.Message(lang.MsgGenericError, "en") {
		t.Errorf("expected generic error text, got %q", turn.Reply)
	}
}

func TestEndSession(t *testing.T) {
	e, store := newTestEngine(t, &stubAnswerer{reply: "x"}, nil, nil)
	setStage(t, store, "s1", StageCompleted, "en")
	if err := e.EndSession(context.Background(), "s1"); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected session removed, got %v", err)
	}
}
