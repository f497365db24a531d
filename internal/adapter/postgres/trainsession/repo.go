// Package trainsession implements the TrainingSession repository using
// PostgreSQL. All queries are raw SQL; the settings snapshot is a JSONB
// column with custom marshal/unmarshal logic.
package trainsession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wordbox/wordbox-backend/internal/adapter/postgres"
	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Repo provides training session persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new training session repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const sessionColumns = `id, user_id, word_ids, current_index, completed_word_ids,
correct_answers, incorrect_answers, settings, status, started_at, completed_at, created_at`

const createSQL = `
INSERT INTO training_sessions (id, user_id, word_ids, current_index, completed_word_ids,
                               correct_answers, incorrect_answers, settings, status, started_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM training_sessions
WHERE id = $1 AND user_id = $2`

const updateSQL = `
UPDATE training_sessions
SET current_index      = COALESCE($3, current_index),
    completed_word_ids = COALESCE($4, completed_word_ids),
    correct_answers    = COALESCE($5, correct_answers),
    incorrect_answers  = COALESCE($6, incorrect_answers),
    status             = COALESCE($7, status),
    completed_at       = COALESCE($8, completed_at)
WHERE id = $1 AND user_id = $2
RETURNING ` + sessionColumns

const listByUserSQL = `
SELECT ` + sessionColumns + `
FROM training_sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByUserSQL = `
SELECT count(*) FROM training_sessions WHERE user_id = $1`

// settingsJSON is the JSONB shape of the settings snapshot.
type settingsJSON struct {
	QuestionTypes    []string `json:"question_types"`
	SessionSize      int      `json:"session_size"`
	SelectedStatuses []int    `json:"selected_statuses"`
	SourceIDs        []string `json:"source_ids,omitempty"`
}

// Create inserts a new session and returns the persisted row.
func (r *Repo) Create(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error) {
	settings, err := marshalSettings(session.Settings)
	if err != nil {
		return nil, fmt.Errorf("session %s: marshal settings: %w", session.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	startedAt := session.StartedAt.UTC().Truncate(time.Microsecond)

	row := r.q.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		session.WordIDs,
		session.CurrentIndex,
		session.CompletedWordIDs,
		session.CorrectAnswers,
		session.IncorrectAnswers,
		settings,
		string(session.Status),
		startedAt,
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", session.ID)
	}
	return created, nil
}

// GetByID returns a session by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.TrainingSession, error) {
	row := r.q.QueryRow(ctx, getByIDSQL, sessionID, userID)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return session, nil
}

// Update applies a partial update to the session's mutable fields and
// returns the fresh row.
func (r *Repo) Update(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionUpdateParams) (*domain.TrainingSession, error) {
	var status *string
	if params.Status != nil {
		s := string(*params.Status)
		status = &s
	}

	row := r.q.QueryRow(ctx, updateSQL,
		sessionID,
		userID,
		params.CurrentIndex,
		params.CompletedWordIDs,
		params.CorrectAnswers,
		params.IncorrectAnswers,
		status,
		params.CompletedAt,
	)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return session, nil
}

// ListByUser returns sessions for a user with pagination, newest first.
// Returns sessions, total count, and error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.TrainingSession, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.q.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.TrainingSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, total, rows.Err()
}

func marshalSettings(s domain.SessionSettings) ([]byte, error) {
	out := settingsJSON{
		QuestionTypes:    make([]string, 0, len(s.QuestionTypes)),
		SessionSize:      s.SessionSize,
		SelectedStatuses: make([]int, 0, len(s.SelectedStatuses)),
	}
	for _, qt := range s.QuestionTypes {
		out.QuestionTypes = append(out.QuestionTypes, string(qt))
	}
	for _, st := range s.SelectedStatuses {
		out.SelectedStatuses = append(out.SelectedStatuses, int(st))
	}
	for _, id := range s.SourceIDs {
		out.SourceIDs = append(out.SourceIDs, id.String())
	}
	return json.Marshal(out)
}

func unmarshalSettings(data []byte) (domain.SessionSettings, error) {
	var settings domain.SessionSettings
	if len(data) == 0 {
		return settings, nil
	}

	var in settingsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return settings, fmt.Errorf("unmarshal settings: %w", err)
	}

	settings.SessionSize = in.SessionSize
	for _, qt := range in.QuestionTypes {
		settings.QuestionTypes = append(settings.QuestionTypes, domain.QuestionType(qt))
	}
	for _, st := range in.SelectedStatuses {
		settings.SelectedStatuses = append(settings.SelectedStatuses, domain.WordStatus(st))
	}
	for _, raw := range in.SourceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return settings, fmt.Errorf("parse source id %q: %w", raw, err)
		}
		settings.SourceIDs = append(settings.SourceIDs, id)
	}
	return settings, nil
}

func scanSession(row pgx.Row) (*domain.TrainingSession, error) {
	var (
		session      domain.TrainingSession
		status       string
		settingsData []byte
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.WordIDs,
		&session.CurrentIndex,
		&session.CompletedWordIDs,
		&session.CorrectAnswers,
		&session.IncorrectAnswers,
		&settingsData,
		&status,
		&session.StartedAt,
		&session.CompletedAt,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Status = domain.SessionStatus(status)
	session.Settings, err = unmarshalSettings(settingsData)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", session.ID, err)
	}
	return &session, nil
}
