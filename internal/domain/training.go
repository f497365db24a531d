package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionSettings is the configuration snapshot a session was built with.
// Immutable for the lifetime of the run.
type SessionSettings struct {
	QuestionTypes    []QuestionType
	SessionSize      int
	SelectedStatuses []WordStatus
	SourceIDs        []uuid.UUID
}

// TrainingSession is one bounded practice run over a fixed word subset.
// WordIDs is the presentation order selected at start and never reordered.
type TrainingSession struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	WordIDs          []uuid.UUID
	CurrentIndex     int
	CompletedWordIDs []uuid.UUID
	CorrectAnswers   int
	IncorrectAnswers int
	Settings         SessionSettings
	Status           SessionStatus
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
}

// TrainingResult is an immutable record of one answered, skipped or manually
// changed word within (or outside) a session. SessionID is nil for manual
// status edits made outside the quiz flow.
type TrainingResult struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WordID       uuid.UUID
	SessionID    *uuid.UUID
	Result       AnswerResult
	QuestionType QuestionType
	OldStatus    WordStatus
	NewStatus    WordStatus
	AnsweredAt   time.Time
}

// SessionUpdateParams holds the session fields mutated after answered or
// skipped questions. Nil fields are left untouched.
type SessionUpdateParams struct {
	CurrentIndex     *int
	CompletedWordIDs []uuid.UUID
	CorrectAnswers   *int
	IncorrectAnswers *int
	Status           *SessionStatus
	CompletedAt      *time.Time
}

// SessionSummary holds the derived end-of-session counters.
type SessionSummary struct {
	SessionID  uuid.UUID
	TotalWords int
	Correct    int
	Incorrect  int
	Accuracy   float64
	Duration   time.Duration
}

// Progress returns the position through the session as a percentage.
// 0 when the session has no words.
func (s *TrainingSession) Progress() float64 {
	if len(s.WordIDs) == 0 {
		return 0
	}
	return float64(s.CurrentIndex) / float64(len(s.WordIDs)) * 100
}

// Accuracy returns the share of correct answers as a percentage.
// 0 when nothing has been answered yet.
func (s *TrainingSession) Accuracy() float64 {
	answered := s.CorrectAnswers + s.IncorrectAnswers
	if answered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(answered) * 100
}
