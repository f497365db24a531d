package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Start selects words by the given criteria, persists a new session and
// returns the first question. Fails with domain.ErrNoEligibleWords when the
// filtered selection is empty; no session is created in that case.
func (e *Engine) Start(ctx context.Context, input StartInput) (*domain.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// An empty status selection matches nothing; don't ask the store.
	if len(input.SelectedStatuses) == 0 {
		return nil, domain.ErrNoEligibleWords
	}

	size := input.SessionSize
	if size == 0 {
		size = e.cfg.DefaultSessionSize
	}
	if size > e.cfg.MaxSessionSize {
		size = e.cfg.MaxSessionSize
	}

	words, err := e.words.ListByUser(ctx, e.userID, domain.WordFilter{
		Statuses:  input.SelectedStatuses,
		SourceIDs: input.SourceIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	// Lower status = higher training priority. The store already orders by
	// status, but the selection contract does not depend on it; the sort is
	// stable so ties keep the store's order.
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Status < words[j].Status
	})
	if len(words) > size {
		words = words[:size]
	}

	if len(words) == 0 {
		return nil, domain.ErrNoEligibleWords
	}

	settings := domain.SessionSettings{
		QuestionTypes:    input.QuestionTypes,
		SessionSize:      size,
		SelectedStatuses: input.SelectedStatuses,
		SourceIDs:        input.SourceIDs,
	}

	q, err := e.beginSession(ctx, words, settings)
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "session started",
		slog.String("session_id", e.session.ID.String()),
		slog.Int("words", len(words)),
		slog.String("question_type", string(e.questionType())),
	)
	return q, nil
}

// RetryIncorrectAnswers starts a brand-new session over the words of the
// current in-memory list that are still at or below the retry threshold.
// The threshold selection is independent of which words were actually
// answered incorrectly this run. With no qualifying words it behaves as
// EndSession and returns no question.
func (e *Engine) RetryIncorrectAnswers(ctx context.Context) (*domain.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil, domain.ErrNoActiveSession
	}

	var subset []*domain.Word
	for _, w := range e.wordList {
		if w.Status <= e.cfg.RetryStatusThreshold {
			subset = append(subset, w)
		}
	}

	if len(subset) == 0 {
		e.reset()
		return nil, nil
	}

	settings := domain.SessionSettings{
		QuestionTypes:    e.session.Settings.QuestionTypes,
		SessionSize:      len(subset),
		SelectedStatuses: e.session.Settings.SelectedStatuses,
		SourceIDs:        e.session.Settings.SourceIDs,
	}

	q, err := e.beginSession(ctx, subset, settings)
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "retry session started",
		slog.String("session_id", e.session.ID.String()),
		slog.Int("words", len(subset)),
	)
	return q, nil
}

// CompleteSession explicitly terminates the run: the session is marked
// completed and the current question cleared, regardless of position.
func (e *Engine) CompleteSession(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() {
		return domain.ErrNoActiveSession
	}

	var errs []error
	e.complete(ctx, &errs)
	e.lastErr = errors.Join(errs...)
	return nil
}

// EndSession discards all in-memory run state without further persistence.
// Already-persisted sessions and results are untouched.
func (e *Engine) EndSession() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Summary returns the derived final counters for the current or just-finished
// run. For a still-active session the duration is measured up to now.
func (e *Engine) Summary() (domain.SessionSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return domain.SessionSummary{}, domain.ErrNoActiveSession
	}

	end := e.clock.Now()
	if e.session.CompletedAt != nil {
		end = *e.session.CompletedAt
	}

	return domain.SessionSummary{
		SessionID:  e.session.ID,
		TotalWords: len(e.session.WordIDs),
		Correct:    e.session.CorrectAnswers,
		Incorrect:  e.session.IncorrectAnswers,
		Accuracy:   e.session.Accuracy(),
		Duration:   end.Sub(e.session.StartedAt),
	}, nil
}

// beginSession persists a new session over the given words, resets the run
// state and emits the first question (under e.mu).
func (e *Engine) beginSession(ctx context.Context, words []*domain.Word, settings domain.SessionSettings) (*domain.Question, error) {
	ids := make([]uuid.UUID, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}

	session := &domain.TrainingSession{
		ID:               uuid.New(),
		UserID:           e.userID,
		WordIDs:          ids,
		CompletedWordIDs: []uuid.UUID{},
		Settings:         settings,
		Status:           domain.SessionStatusActive,
		StartedAt:        e.clock.Now(),
	}

	created, err := e.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	e.session = created
	e.wordList = words
	e.question = nil

	var errs []error
	q := e.present(ctx, &errs)
	e.lastErr = errors.Join(errs...)
	return q, nil
}

// present refreshes the current word's translation if it is missing and
// generates its question (under e.mu). Recoverable failures go into errs.
func (e *Engine) present(ctx context.Context, errs *[]error) *domain.Question {
	w := e.wordList[e.session.CurrentIndex]
	e.refreshTranslation(ctx, w, errs)

	q, err := e.gen.Generate(w, e.questionType())
	if err != nil {
		*errs = append(*errs, fmt.Errorf("generate question: %w", err))
		e.question = nil
		return nil
	}
	e.question = q
	return q
}

// refreshTranslation fetches a missing/sentinel translation before quizzing.
// Lookup and persistence failures are recoverable: the engine proceeds with
// whatever value the word already holds.
func (e *Engine) refreshTranslation(ctx context.Context, w *domain.Word, errs *[]error) {
	if !w.NeedsTranslation() {
		return
	}

	translated, err := e.translator.Translate(ctx, w.Text)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("refresh translation for %q: %w", w.Text, err))
		return
	}
	if translated == w.Translation {
		return
	}

	if _, err := e.words.Update(ctx, e.userID, w.ID, domain.WordUpdateParams{Translation: &translated}); err != nil {
		*errs = append(*errs, fmt.Errorf("persist translation for %q: %w", w.Text, err))
	}
	w.Translation = translated
}

// complete marks the session finished and persists its final counters
// (under e.mu, best-effort).
func (e *Engine) complete(ctx context.Context, errs *[]error) {
	now := e.clock.Now()
	e.session.Status = domain.SessionStatusCompleted
	e.session.CompletedAt = &now
	e.question = nil

	status := domain.SessionStatusCompleted
	index := e.session.CurrentIndex
	correct := e.session.CorrectAnswers
	incorrect := e.session.IncorrectAnswers

	_, err := e.sessions.Update(ctx, e.userID, e.session.ID, domain.SessionUpdateParams{
		CurrentIndex:     &index,
		CompletedWordIDs: e.session.CompletedWordIDs,
		CorrectAnswers:   &correct,
		IncorrectAnswers: &incorrect,
		Status:           &status,
		CompletedAt:      &now,
	})
	if err != nil {
		*errs = append(*errs, fmt.Errorf("persist session completion: %w", err))
	}

	e.log.InfoContext(ctx, "session completed",
		slog.String("session_id", e.session.ID.String()),
		slog.Int("correct", correct),
		slog.Int("incorrect", incorrect),
	)
}

// persistProgress writes the session's position and counters (under e.mu,
// best-effort).
func (e *Engine) persistProgress(ctx context.Context, errs *[]error) {
	index := e.session.CurrentIndex
	correct := e.session.CorrectAnswers
	incorrect := e.session.IncorrectAnswers

	_, err := e.sessions.Update(ctx, e.userID, e.session.ID, domain.SessionUpdateParams{
		CurrentIndex:     &index,
		CompletedWordIDs: e.session.CompletedWordIDs,
		CorrectAnswers:   &correct,
		IncorrectAnswers: &incorrect,
	})
	if err != nil {
		*errs = append(*errs, fmt.Errorf("persist session progress: %w", err))
	}
}

// reset discards all in-memory run state (under e.mu).
func (e *Engine) reset() {
	e.session = nil
	e.wordList = nil
	e.question = nil
	e.lastErr = nil
}
