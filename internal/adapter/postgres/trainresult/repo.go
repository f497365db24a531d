// Package trainresult implements the append-only TrainingResult repository
// using PostgreSQL. Result rows are never updated or deleted.
package trainresult

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wordbox/wordbox-backend/internal/adapter/postgres"
	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Repo provides training result persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new training result repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const resultColumns = `id, user_id, word_id, session_id, result, question_type, old_status, new_status, answered_at`

const createSQL = `
INSERT INTO training_results (id, user_id, word_id, session_id, result, question_type, old_status, new_status, answered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + resultColumns

const getBySessionSQL = `
SELECT ` + resultColumns + `
FROM training_results
WHERE session_id = $1
ORDER BY answered_at ASC`

const getByWordSQL = `
SELECT ` + resultColumns + `
FROM training_results
WHERE word_id = $1
ORDER BY answered_at DESC
LIMIT $2`

// Create appends a result row and returns the persisted record.
func (r *Repo) Create(ctx context.Context, result *domain.TrainingResult) (*domain.TrainingResult, error) {
	row := r.q.QueryRow(ctx, createSQL,
		result.ID,
		result.UserID,
		result.WordID,
		result.SessionID,
		string(result.Result),
		string(result.QuestionType),
		int(result.OldStatus),
		int(result.NewStatus),
		result.AnsweredAt,
	)

	created, err := scanResult(row)
	if err != nil {
		return nil, postgres.MapError(err, "training result", result.ID)
	}
	return created, nil
}

// GetBySessionID returns all results of a session in answer order.
// The order matches the order questions were answered (stats aggregation
// relies on this).
func (r *Repo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.TrainingResult, error) {
	rows, err := r.q.Query(ctx, getBySessionSQL, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "training result", uuid.Nil)
	}
	defer rows.Close()

	return scanResults(rows)
}

// GetByWordID returns the most recent results for a word, newest first.
func (r *Repo) GetByWordID(ctx context.Context, wordID uuid.UUID, limit int) ([]*domain.TrainingResult, error) {
	rows, err := r.q.Query(ctx, getByWordSQL, wordID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "training result", wordID)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResult(row pgx.Row) (*domain.TrainingResult, error) {
	var (
		res          domain.TrainingResult
		result       string
		questionType string
	)

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.WordID,
		&res.SessionID,
		&result,
		&questionType,
		&res.OldStatus,
		&res.NewStatus,
		&res.AnsweredAt,
	)
	if err != nil {
		return nil, err
	}

	res.Result = domain.AnswerResult(result)
	res.QuestionType = domain.QuestionType(questionType)
	return &res, nil
}

func scanResults(rows pgx.Rows) ([]*domain.TrainingResult, error) {
	var results []*domain.TrainingResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan training result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
