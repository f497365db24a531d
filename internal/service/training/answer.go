package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Answer scores the current question, moves the word one status step up or
// down (clamped to the ladder), records a result row and advances. Returns
// the next question, or nil when the session just completed.
//
// All writes are best-effort: a failed status update or result append is
// collected into State().LastErr and never rolls back in-memory progress.
func (e *Engine) Answer(ctx context.Context, isCorrect bool) (*domain.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() || e.question == nil {
		return nil, domain.ErrNoActiveSession
	}

	var errs []error
	now := e.clock.Now()
	w := e.wordList[e.session.CurrentIndex]

	oldStatus := w.Status
	newStatus := oldStatus.Next(isCorrect)

	result := domain.AnswerResultIncorrect
	if isCorrect {
		result = domain.AnswerResultCorrect
		e.session.CorrectAnswers++
	} else {
		e.session.IncorrectAnswers++
	}
	e.session.CompletedWordIDs = append(e.session.CompletedWordIDs, w.ID)

	if _, err := e.words.Update(ctx, e.userID, w.ID, domain.WordUpdateParams{
		Status:        &newStatus,
		LastTrainedAt: &now,
	}); err != nil {
		errs = append(errs, fmt.Errorf("update word status: %w", err))
	}
	w.Status = newStatus
	w.LastTrainedAt = &now

	if _, err := e.results.Create(ctx, &domain.TrainingResult{
		ID:           uuid.New(),
		UserID:       e.userID,
		WordID:       w.ID,
		SessionID:    &e.session.ID,
		Result:       result,
		QuestionType: e.question.Type,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		AnsweredAt:   now,
	}); err != nil {
		errs = append(errs, fmt.Errorf("record result: %w", err))
	}

	e.log.DebugContext(ctx, "answer recorded",
		slog.String("word_id", w.ID.String()),
		slog.String("result", string(result)),
		slog.Int("old_status", int(oldStatus)),
		slog.Int("new_status", int(newStatus)),
	)

	e.session.CurrentIndex++

	var next *domain.Question
	if e.session.CurrentIndex < len(e.wordList) {
		e.persistProgress(ctx, &errs)
		next = e.present(ctx, &errs)
	} else {
		e.complete(ctx, &errs)
	}

	e.lastErr = errors.Join(errs...)
	return next, nil
}
