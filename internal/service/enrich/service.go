// Package enrich refreshes words whose translation or definition is missing
// or a provider sentinel, in batches. Used by the enrich command.
package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
	"github.com/wordbox/wordbox-backend/internal/provider"
)

type wordRepo interface {
	ListNeedingEnrichment(ctx context.Context, limit int) ([]*domain.Word, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (*domain.Word, error)
}

type dictionary interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error)
}

type translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Stats summarizes one enrichment run.
type Stats struct {
	Processed    int
	Translated   int
	Defined      int
	Failed       int
	NothingFound int
}

// Service implements batch word enrichment.
type Service struct {
	words      wordRepo
	dictionary dictionary
	translator translator
	log        *slog.Logger
}

// NewService creates a new enrichment service.
func NewService(log *slog.Logger, words wordRepo, dictionary dictionary, translator translator) *Service {
	return &Service{
		words:      words,
		dictionary: dictionary,
		translator: translator,
		log:        log.With("service", "enrich"),
	}
}

// Run refreshes up to batchSize words. Provider failures are per-word: a
// word that cannot be enriched is counted and skipped, the batch continues.
func (s *Service) Run(ctx context.Context, batchSize int) (Stats, error) {
	if batchSize <= 0 {
		return Stats{}, domain.NewValidationError("batch_size", "must be positive")
	}

	words, err := s.words.ListNeedingEnrichment(ctx, batchSize)
	if err != nil {
		return Stats{}, fmt.Errorf("list words needing enrichment: %w", err)
	}

	var stats Stats
	for _, w := range words {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		stats.Processed++

		params, outcome := s.enrichOne(ctx, w)
		switch outcome {
		case outcomeFailed:
			stats.Failed++
			continue
		case outcomeNothingFound:
			stats.NothingFound++
		}
		if params.Translation != nil && *params.Translation != domain.TranslationNotFound {
			stats.Translated++
		}
		if params.Definition != nil && *params.Definition != domain.DefinitionNotFound {
			stats.Defined++
		}

		if _, err := s.words.Update(ctx, w.UserID, w.ID, params); err != nil {
			s.log.ErrorContext(ctx, "persist enrichment",
				slog.String("word", w.Text), slog.String("error", err.Error()))
			stats.Failed++
		}
	}

	s.log.InfoContext(ctx, "enrichment run finished",
		slog.Int("processed", stats.Processed),
		slog.Int("translated", stats.Translated),
		slog.Int("defined", stats.Defined),
		slog.Int("failed", stats.Failed),
	)
	return stats, nil
}

type outcome int

const (
	outcomeEnriched outcome = iota
	outcomeNothingFound
	outcomeFailed
)

// enrichOne gathers the missing fields of one word from the providers.
// Sentinels are written back on "no match" so the word stops being
// re-selected every run.
func (s *Service) enrichOne(ctx context.Context, w *domain.Word) (domain.WordUpdateParams, outcome) {
	var params domain.WordUpdateParams
	found := false
	failed := true

	if w.NeedsTranslation() {
		translated, err := s.translator.Translate(ctx, w.Text)
		if err != nil {
			s.log.WarnContext(ctx, "translate failed",
				slog.String("word", w.Text), slog.String("error", err.Error()))
		} else {
			params.Translation = &translated
			failed = false
			if translated != domain.TranslationNotFound {
				found = true
			}
		}
	} else {
		failed = false
	}

	if w.NeedsDefinition() {
		entry, err := s.dictionary.FetchEntry(ctx, w.Text)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "dictionary lookup failed",
				slog.String("word", w.Text), slog.String("error", err.Error()))
		case entry == nil || entry.Definition == "":
			sentinel := domain.DefinitionNotFound
			params.Definition = &sentinel
			failed = false
		default:
			params.Definition = &entry.Definition
			failed = false
			found = true
			if entry.PhoneticText != "" {
				params.PhoneticText = &entry.PhoneticText
			}
			if entry.PhoneticAudioURL != "" {
				params.PhoneticAudioURL = &entry.PhoneticAudioURL
			}
			if len(entry.Examples) > 0 {
				params.Examples = entry.Examples
			}
			if len(entry.Synonyms) > 0 {
				params.Synonyms = entry.Synonyms
			}
			if len(entry.Antonyms) > 0 {
				params.Antonyms = entry.Antonyms
			}
		}
	}

	switch {
	case failed && params.Translation == nil && params.Definition == nil:
		return params, outcomeFailed
	case !found:
		return params, outcomeNothingFound
	}
	return params, outcomeEnriched
}
