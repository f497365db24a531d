package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts a word with the given status and returns the filled domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.WordStatus) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:          uuid.New(),
		UserID:      userID,
		Text:        "word-" + suffix,
		Translation: "слово-" + suffix,
		Definition:  "a seeded definition",
		Examples:    []string{"A sentence with word-" + suffix + " inside."},
		Synonyms:    []string{},
		Antonyms:    []string{},
		Status:      status.Clamp(),
		SourceIDs:   []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, text, translation, definition, examples, synonyms, antonyms, status, source_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		word.ID, word.UserID, word.Text, word.Translation, word.Definition,
		word.Examples, word.Synonyms, word.Antonyms, int(word.Status), word.SourceIDs,
		word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return word
}

// SeedSession inserts an ACTIVE training session over the given word ids.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, wordIDs []uuid.UUID) domain.TrainingSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.TrainingSession{
		ID:      uuid.New(),
		UserID:  userID,
		WordIDs: wordIDs,
		Settings: domain.SessionSettings{
			QuestionTypes:    []domain.QuestionType{domain.QuestionTypeInputWord},
			SessionSize:      len(wordIDs),
			SelectedStatuses: []domain.WordStatus{1, 2, 3},
		},
		Status:    domain.SessionStatusActive,
		StartedAt: now,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO training_sessions (id, user_id, word_ids, current_index, completed_word_ids, correct_answers, incorrect_answers, settings, status, started_at, created_at)
		 VALUES ($1, $2, $3, 0, '{}', 0, 0, '{"question_types":["INPUT_WORD"]}', $4, $5, $6)`,
		session.ID, session.UserID, session.WordIDs, string(session.Status), session.StartedAt, session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return session
}
