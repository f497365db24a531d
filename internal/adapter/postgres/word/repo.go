// Package word implements the Word repository using PostgreSQL.
// Fixed-shape queries are SQL constants; the filtered list query is built
// dynamically with squirrel.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wordbox/wordbox-backend/internal/adapter/postgres"
	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new word repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const wordColumns = `id, user_id, text, translation, definition, phonetic_text, phonetic_audio_url,
examples, synonyms, antonyms, status, source_ids, last_trained_at, created_at, updated_at, deleted_at`

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const createSQL = `
INSERT INTO words (id, user_id, text, translation, definition, phonetic_text, phonetic_audio_url,
                   examples, synonyms, antonyms, status, source_ids, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
RETURNING ` + wordColumns

const softDeleteSQL = `
UPDATE words
SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const listNeedingEnrichmentSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE deleted_at IS NULL
  AND (translation = '' OR translation = $1 OR definition = '' OR definition = $2)
ORDER BY updated_at ASC
LIMIT $3`

const countByStatusSQL = `
SELECT status, count(*)
FROM words
WHERE user_id = $1 AND deleted_at IS NULL
GROUP BY status`

// GetByID returns a word by primary key filtered by user_id.
// Soft-deleted words are treated as absent (domain.ErrNotFound).
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	row := r.q.QueryRow(ctx, getByIDSQL, wordID, userID)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return w, nil
}

// ListByUser returns the user's live words matching the filter,
// ordered ascending by status (lower status = higher training priority)
// with creation time as the stable tie-break.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]*domain.Word, error) {
	builder := sq.Select(wordColumns).
		From("words").
		Where(sq.Eq{"user_id": userID}).
		Where("deleted_at IS NULL").
		OrderBy("status ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": filter.Statuses})
	}
	if len(filter.SourceIDs) > 0 {
		builder = builder.Where("source_ids && ?::uuid[]", filter.SourceIDs)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	return scanWords(rows)
}

// Create inserts a new word and returns the persisted row.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	row := r.q.QueryRow(ctx, createSQL,
		w.ID,
		w.UserID,
		w.Text,
		w.Translation,
		w.Definition,
		w.PhoneticText,
		w.PhoneticAudioURL,
		w.Examples,
		w.Synonyms,
		w.Antonyms,
		int(w.Status.Clamp()),
		w.SourceIDs,
	)

	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return created, nil
}

// Update applies a partial update and returns the fresh row.
// Calling it with no fields set is a validation error.
func (r *Repo) Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (*domain.Word, error) {
	builder := sq.Update("words").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + wordColumns).
		PlaceholderFormat(sq.Dollar)

	changed := false
	if params.Status != nil {
		builder = builder.Set("status", int(params.Status.Clamp()))
		changed = true
	}
	if params.Translation != nil {
		builder = builder.Set("translation", *params.Translation)
		changed = true
	}
	if params.Definition != nil {
		builder = builder.Set("definition", *params.Definition)
		changed = true
	}
	if params.PhoneticText != nil {
		builder = builder.Set("phonetic_text", *params.PhoneticText)
		changed = true
	}
	if params.PhoneticAudioURL != nil {
		builder = builder.Set("phonetic_audio_url", *params.PhoneticAudioURL)
		changed = true
	}
	if params.Examples != nil {
		builder = builder.Set("examples", params.Examples)
		changed = true
	}
	if params.Synonyms != nil {
		builder = builder.Set("synonyms", params.Synonyms)
		changed = true
	}
	if params.Antonyms != nil {
		builder = builder.Set("antonyms", params.Antonyms)
		changed = true
	}
	if params.LastTrainedAt != nil {
		builder = builder.Set("last_trained_at", *params.LastTrainedAt)
		changed = true
	}
	if !changed {
		return nil, domain.NewValidationError("update", "no fields to update")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	row := r.q.QueryRow(ctx, query, args...)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return w, nil
}

// SoftDelete flags the word as deleted without removing the row, so
// training-result back-references stay valid.
// Returns domain.ErrNotFound if the word is absent or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, wordID uuid.UUID) error {
	tag, err := r.q.Exec(ctx, softDeleteSQL, wordID, userID)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// ListNeedingEnrichment returns live words, across all users, whose
// translation or definition is empty or a provider sentinel. Least recently
// touched words come first so batch refreshes make round-robin progress.
func (r *Repo) ListNeedingEnrichment(ctx context.Context, limit int) ([]*domain.Word, error) {
	rows, err := r.q.Query(ctx, listNeedingEnrichmentSQL,
		domain.TranslationNotFound, domain.DefinitionNotFound, limit)
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	return scanWords(rows)
}

// CountByStatus returns per-level totals for the user's live words.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.WordStatusCounts, error) {
	var counts domain.WordStatusCounts

	rows, err := r.q.Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return counts, postgres.MapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		var status, n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, fmt.Errorf("scan status count: %w", err)
		}
		if status >= int(domain.MinWordStatus) && status <= int(domain.MaxWordStatus) {
			counts.ByStatus[status] = n
			counts.Total += n
		}
	}
	return counts, rows.Err()
}

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Text,
		&w.Translation,
		&w.Definition,
		&w.PhoneticText,
		&w.PhoneticAudioURL,
		&w.Examples,
		&w.Synonyms,
		&w.Antonyms,
		&w.Status,
		&w.SourceIDs,
		&w.LastTrainedAt,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]*domain.Word, error) {
	var words []*domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
