package training

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// State is a point-in-time snapshot of the engine for the caller to render.
type State struct {
	SessionID        uuid.UUID
	Words            []*domain.Word
	Question         *domain.Question
	CurrentIndex     int
	InProgress       bool
	Completed        bool
	CorrectAnswers   int
	IncorrectAnswers int
	CompletedWordIDs []uuid.UUID
	// Progress is the position through the live word list, in percent.
	Progress float64
	// Accuracy is correct/(correct+incorrect) in percent, 0 before the
	// first answer.
	Accuracy float64
	// LastErr holds the recoverable failures of the most recent operation
	// (enrichment or persistence); the run itself continued.
	LastErr error
}

// State returns a snapshot of the current run. The slices are copies; the
// Word pointers are shared and must be treated as read-only by the caller.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		Question: e.question,
		LastErr:  e.lastErr,
	}
	if e.session == nil {
		return st
	}

	st.SessionID = e.session.ID
	st.Words = slices.Clone(e.wordList)
	st.CurrentIndex = e.session.CurrentIndex
	st.InProgress = e.session.Status == domain.SessionStatusActive
	st.Completed = e.session.Status == domain.SessionStatusCompleted
	st.CorrectAnswers = e.session.CorrectAnswers
	st.IncorrectAnswers = e.session.IncorrectAnswers
	st.CompletedWordIDs = slices.Clone(e.session.CompletedWordIDs)
	if len(e.wordList) > 0 {
		st.Progress = float64(e.session.CurrentIndex) / float64(len(e.wordList)) * 100
	}
	st.Accuracy = e.session.Accuracy()
	return st
}

// Sessions returns the user's past training sessions, newest first, with the
// total count for paging.
func (e *Engine) Sessions(ctx context.Context, limit, offset int) ([]*domain.TrainingSession, int, error) {
	if limit <= 0 || limit > 100 {
		return nil, 0, domain.NewValidationError("limit", "must be between 1 and 100")
	}
	if offset < 0 {
		return nil, 0, domain.NewValidationError("offset", "must be non-negative")
	}

	sessions, total, err := e.sessions.ListByUser(ctx, e.userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, total, nil
}

// StatusOverview returns the user's per-status word totals, for the
// end-of-session overview.
func (e *Engine) StatusOverview(ctx context.Context) (domain.WordStatusCounts, error) {
	counts, err := e.words.CountByStatus(ctx, e.userID)
	if err != nil {
		return domain.WordStatusCounts{}, fmt.Errorf("count words by status: %w", err)
	}
	return counts, nil
}
