package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// HandleStatusChange sets the current word's status directly, outside the
// quiz scoring path. The change is recorded as a MANUAL result with outcome
// CORRECT. A wordID that is not the current word is silently ignored; the
// index does not advance and no new question is generated.
func (e *Engine) HandleStatusChange(ctx context.Context, wordID uuid.UUID, status domain.WordStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() {
		return domain.ErrNoActiveSession
	}

	w := e.wordList[e.session.CurrentIndex]
	if w.ID != wordID {
		e.log.DebugContext(ctx, "status change ignored for non-current word",
			slog.String("word_id", wordID.String()))
		return nil
	}

	var errs []error
	now := e.clock.Now()
	oldStatus := w.Status
	newStatus := status.Clamp()

	if _, err := e.words.Update(ctx, e.userID, w.ID, domain.WordUpdateParams{
		Status:        &newStatus,
		LastTrainedAt: &now,
	}); err != nil {
		errs = append(errs, fmt.Errorf("update word status: %w", err))
	}

	if _, err := e.results.Create(ctx, &domain.TrainingResult{
		ID:           uuid.New(),
		UserID:       e.userID,
		WordID:       w.ID,
		SessionID:    &e.session.ID,
		Result:       domain.AnswerResultCorrect,
		QuestionType: domain.QuestionTypeManual,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		AnsweredAt:   now,
	}); err != nil {
		errs = append(errs, fmt.Errorf("record manual result: %w", err))
	}

	w.Status = newStatus
	w.LastTrainedAt = &now

	e.lastErr = errors.Join(errs...)
	return nil
}

// HandleDelete soft-deletes a word in the store and evicts it from the run.
// If the deleted word was the current one, the next word takes its place; if
// no forward word exists, the run retreats one position; deleting the last
// remaining word completes the session with no further question.
func (e *Engine) HandleDelete(ctx context.Context, wordID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() {
		return domain.ErrNoActiveSession
	}

	var errs []error

	// The soft delete is a timestamp flag, so result rows keep valid
	// back-references. A store failure is recoverable; the word is still
	// evicted from the in-memory run.
	if err := e.words.SoftDelete(ctx, e.userID, wordID); err != nil {
		errs = append(errs, fmt.Errorf("soft delete word: %w", err))
	}

	idx := -1
	for i, w := range e.wordList {
		if w.ID == wordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.lastErr = errors.Join(errs...)
		return nil
	}

	e.wordList = append(e.wordList[:idx], e.wordList[idx+1:]...)

	switch {
	case len(e.wordList) == 0:
		e.complete(ctx, &errs)

	case idx < e.session.CurrentIndex:
		// A word behind the cursor disappeared; shift to keep pointing at
		// the same current word.
		e.session.CurrentIndex--
		e.persistProgress(ctx, &errs)

	case idx == e.session.CurrentIndex:
		if e.session.CurrentIndex >= len(e.wordList) {
			// No forward word: retreat.
			e.session.CurrentIndex = len(e.wordList) - 1
		}
		// Either the next word slid into the current slot or we retreated;
		// both need a fresh question.
		e.persistProgress(ctx, &errs)
		e.present(ctx, &errs)
	}

	e.lastErr = errors.Join(errs...)
	return nil
}
