// Package training implements the training session engine: word selection,
// the question/answer loop, status mutation, result recording and the
// retry/end transitions.
package training

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/wordbox/wordbox-backend/internal/domain"
	"github.com/wordbox/wordbox-backend/internal/service/training/question"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]*domain.Word, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (*domain.Word, error)
	SoftDelete(ctx context.Context, userID, wordID uuid.UUID) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (domain.WordStatusCounts, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error)
	Update(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionUpdateParams) (*domain.TrainingSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.TrainingSession, int, error)
}

type resultRepo interface {
	Create(ctx context.Context, result *domain.TrainingResult) (*domain.TrainingResult, error)
}

type translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Config bounds session sizes and the retry selection.
type Config struct {
	// DefaultSessionSize is used when StartInput.SessionSize is zero.
	DefaultSessionSize int
	// MaxSessionSize caps the requested size.
	MaxSessionSize int
	// RetryStatusThreshold selects the words RetryIncorrectAnswers picks up:
	// every word at or below it, regardless of how it was answered this run.
	RetryStatusThreshold domain.WordStatus
}

// Engine drives one user's training sessions. It is a stateful handle:
// construct one per user, with the owner id injected rather than read from
// ambient context. At most one session is in progress per Engine.
//
// Public operations are serialized by an internal mutex: a second call
// arriving while one is in flight waits for it to settle.
type Engine struct {
	userID     uuid.UUID
	words      wordRepo
	sessions   sessionRepo
	results    resultRepo
	translator translator
	gen        *question.Generator
	clock      clockwork.Clock
	log        *slog.Logger
	cfg        Config

	mu sync.Mutex
	// In-memory run state. wordList is the live presentation list; it starts
	// as the session's WordIDs resolution and shrinks when words are deleted
	// mid-run. session mirrors what has been persisted.
	session  *domain.TrainingSession
	wordList []*domain.Word
	question *domain.Question
	// lastErr collects the recoverable failures (enrichment, persistence) of
	// the most recent operation; it never aborts the loop.
	lastErr error
}

// NewEngine creates a training engine for one user.
func NewEngine(
	log *slog.Logger,
	userID uuid.UUID,
	words wordRepo,
	sessions sessionRepo,
	results resultRepo,
	translator translator,
	gen *question.Generator,
	clock clockwork.Clock,
	cfg Config,
) *Engine {
	if cfg.DefaultSessionSize <= 0 {
		cfg.DefaultSessionSize = 10
	}
	if cfg.MaxSessionSize <= 0 {
		cfg.MaxSessionSize = 100
	}
	if cfg.RetryStatusThreshold < domain.MinWordStatus {
		cfg.RetryStatusThreshold = 2
	}
	if gen == nil {
		gen = question.New(nil)
	}

	return &Engine{
		userID:     userID,
		words:      words,
		sessions:   sessions,
		results:    results,
		translator: translator,
		gen:        gen,
		clock:      clock,
		log:        log.With("service", "training", slog.String("user_id", userID.String())),
		cfg:        cfg,
	}
}

// questionType returns the type driving the current session. The engine uses
// the first configured type for the whole run; per-word rotation is a
// possible future extension.
func (e *Engine) questionType() domain.QuestionType {
	return e.session.Settings.QuestionTypes[0]
}

// inProgress reports whether a session is active (under e.mu).
func (e *Engine) inProgress() bool {
	return e.session != nil && e.session.Status == domain.SessionStatusActive
}
