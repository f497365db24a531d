package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordStatus is the learning-progress ladder of a word.
// 1 = "Not Learned" … 7 = "Mastered". Always clamped to [MinWordStatus, MaxWordStatus].
type WordStatus int

const (
	MinWordStatus WordStatus = 1
	MaxWordStatus WordStatus = 7
)

// TranslationNotFound is the sentinel stored when the translation provider
// has no match for a word. Treated the same as an empty string by refresh logic.
const TranslationNotFound = "Translation not found"

// DefinitionNotFound is the sentinel stored when the dictionary provider
// has no entry for a word.
const DefinitionNotFound = "Definition not found"

func (s WordStatus) IsValid() bool {
	return s >= MinWordStatus && s <= MaxWordStatus
}

// Clamp bounds the status to the ladder.
func (s WordStatus) Clamp() WordStatus {
	if s < MinWordStatus {
		return MinWordStatus
	}
	if s > MaxWordStatus {
		return MaxWordStatus
	}
	return s
}

// Next returns the status after one answered question: one step up for a
// correct answer, one step down otherwise, clamped at both ends.
func (s WordStatus) Next(correct bool) WordStatus {
	if correct {
		return (s + 1).Clamp()
	}
	return (s - 1).Clamp()
}

// Label returns the human-readable name of the status level.
func (s WordStatus) Label() string {
	switch s.Clamp() {
	case 1:
		return "Not Learned"
	case 2:
		return "Seen"
	case 3:
		return "Recognized"
	case 4:
		return "Familiar"
	case 5:
		return "Learned"
	case 6:
		return "Known"
	default:
		return "Mastered"
	}
}

// Word is a learnable vocabulary entry owned by a single user.
// Text is immutable after creation; enrichment fields are independently
// refreshable; Status is mutated by the training engine.
type Word struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Text             string
	Translation      string
	Definition       string
	PhoneticText     string
	PhoneticAudioURL string
	Examples         []string
	Synonyms         []string
	Antonyms         []string
	Status           WordStatus
	SourceIDs        []uuid.UUID
	LastTrainedAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// IsDeleted returns true if the word has been soft-deleted.
func (w *Word) IsDeleted() bool {
	return w.DeletedAt != nil
}

// NeedsTranslation reports whether the translation is missing or the
// provider sentinel, i.e. a refresh should be attempted before quizzing.
func (w *Word) NeedsTranslation() bool {
	return w.Translation == "" || w.Translation == TranslationNotFound
}

// NeedsDefinition reports whether the definition is missing or sentinel.
func (w *Word) NeedsDefinition() bool {
	return w.Definition == "" || w.Definition == DefinitionNotFound
}

// BelongsToAny returns true if the word was extracted from at least one of
// the given source collections. An empty filter matches nothing.
func (w *Word) BelongsToAny(sourceIDs []uuid.UUID) bool {
	for _, want := range sourceIDs {
		for _, have := range w.SourceIDs {
			if have == want {
				return true
			}
		}
	}
	return false
}


// WordUpdateParams holds the optional fields of a partial word update.
// Nil fields are left untouched.
type WordUpdateParams struct {
	Status           *WordStatus
	Translation      *string
	Definition       *string
	PhoneticText     *string
	PhoneticAudioURL *string
	Examples         []string
	Synonyms         []string
	Antonyms         []string
	LastTrainedAt    *time.Time
}

// WordFilter narrows word listings. Empty slices impose no constraint;
// SourceIDs matches words that overlap at least one listed source collection.
type WordFilter struct {
	Statuses  []WordStatus
	SourceIDs []uuid.UUID
}

// WordStatusCounts holds the per-level word totals for a user.
type WordStatusCounts struct {
	ByStatus [MaxWordStatus + 1]int // index 1..7
	Total    int
}
