package question

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

func newTestGenerator() *Generator {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func testWord() *domain.Word {
	return &domain.Word{
		ID:               uuid.New(),
		Text:             "Cat",
		Translation:      "кіт",
		Examples:         []string{"The cat sat on the mat."},
		Synonyms:         []string{"feline"},
		Antonyms:         []string{"dog"},
		PhoneticAudioURL: "https://example.com/cat.mp3",
		Status:           1,
	}
}

func TestGenerate_InputWord(t *testing.T) {
	t.Parallel()

	q, err := newTestGenerator().Generate(testWord(), domain.QuestionTypeInputWord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != domain.QuestionTypeInputWord {
		t.Errorf("Type = %s", q.Type)
	}
	if q.CorrectAnswer != "cat" {
		t.Errorf("CorrectAnswer = %q, want normalized word text", q.CorrectAnswer)
	}
	if !strings.Contains(q.Prompt, "кіт") {
		t.Errorf("Prompt = %q, want it to show the translation", q.Prompt)
	}
	if len(q.Options) != 0 {
		t.Errorf("Options = %v, want none for a free-text question", q.Options)
	}
	if !q.CheckAnswer("  CAT ") {
		t.Error("CheckAnswer should ignore case and surrounding spaces")
	}
}

func TestGenerate_ChooseTranslation_OptionsInvariant(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	w := testWord()

	// The options invariant must hold across many shuffles, not just one.
	for range 100 {
		q, err := g.Generate(w, domain.QuestionTypeChooseTranslation)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Options) < 2 {
			t.Fatalf("len(Options) = %d, want >= 2", len(q.Options))
		}
		count := 0
		for _, opt := range q.Options {
			if opt == "кіт" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("correct answer appears %d times in %v, want exactly once", count, q.Options)
		}
	}
}

func TestGenerate_ChooseTranslation_PoolCollision(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	w := testWord()
	// A translation that exists in the fallback pool must not be duplicated.
	w.Translation = fallbackTranslations[0]

	for range 50 {
		q, err := g.Generate(w, domain.QuestionTypeChooseTranslation)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count := 0
		for _, opt := range q.Options {
			if opt == w.Translation {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("correct answer appears %d times in %v", count, q.Options)
		}
		if len(q.Options) < 2 || len(q.Options) > maxDistractors+1 {
			t.Fatalf("len(Options) = %d, want between 2 and %d", len(q.Options), maxDistractors+1)
		}
	}
}

func TestGenerate_ContextUsage_BlanksExample(t *testing.T) {
	t.Parallel()

	q, err := newTestGenerator().Generate(testWord(), domain.QuestionTypeContextUsage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Context != "The "+BlankMarker+" sat on the mat." {
		t.Errorf("Context = %q", q.Context)
	}
	if q.CorrectAnswer != "cat" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestGenerate_ContextUsage_SyntheticFallback(t *testing.T) {
	t.Parallel()

	w := testWord()
	w.Examples = nil

	q, err := newTestGenerator().Generate(w, domain.QuestionTypeContextUsage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Context == "" {
		t.Fatal("Context must never be empty")
	}
	if !strings.Contains(q.Context, BlankMarker) {
		t.Errorf("Context = %q, want it to contain the blank marker", q.Context)
	}
}

func TestGenerate_ContextUsage_ExampleWithoutWordFallsBack(t *testing.T) {
	t.Parallel()

	w := testWord()
	w.Examples = []string{"A sentence that never mentions the animal."}

	q, err := newTestGenerator().Generate(w, domain.QuestionTypeContextUsage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(q.Context, BlankMarker) {
		t.Errorf("Context = %q, want synthetic sentence with blank marker", q.Context)
	}
}

func TestGenerate_SynonymMatch(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	w := testWord()

	sawSynonym, sawAntonym := false, false
	for range 100 {
		q, err := g.Generate(w, domain.QuestionTypeSynonymMatch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		switch q.CorrectAnswer {
		case "feline":
			sawSynonym = true
			if !strings.Contains(q.Prompt, "synonym") {
				t.Errorf("Prompt = %q, want synonym wording", q.Prompt)
			}
		case "dog":
			sawAntonym = true
			if !strings.Contains(q.Prompt, "antonym") {
				t.Errorf("Prompt = %q, want antonym wording", q.Prompt)
			}
		default:
			t.Fatalf("CorrectAnswer = %q, want first synonym or antonym", q.CorrectAnswer)
		}
		if len(q.Options) < 2 {
			t.Fatalf("len(Options) = %d, want >= 2", len(q.Options))
		}
	}
	if !sawSynonym || !sawAntonym {
		t.Errorf("coin flip never varied: synonym=%v antonym=%v", sawSynonym, sawAntonym)
	}
}

func TestGenerate_SynonymMatch_FallsBackToTranslation(t *testing.T) {
	t.Parallel()

	w := testWord()
	w.Synonyms = nil
	w.Antonyms = nil

	q, err := newTestGenerator().Generate(w, domain.QuestionTypeSynonymMatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != domain.QuestionTypeChooseTranslation {
		t.Errorf("Type = %s, want fallback to CHOOSE_TRANSLATION", q.Type)
	}
	if q.CorrectAnswer != "кіт" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestGenerate_AudioDictation(t *testing.T) {
	t.Parallel()

	q, err := newTestGenerator().Generate(testWord(), domain.QuestionTypeAudioDictation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.AudioURL != "https://example.com/cat.mp3" {
		t.Errorf("AudioURL = %q", q.AudioURL)
	}
	if q.CorrectAnswer != "cat" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestGenerate_ManualIsRejected(t *testing.T) {
	t.Parallel()

	_, err := newTestGenerator().Generate(testWord(), domain.QuestionTypeManual)
	if err == nil {
		t.Fatal("expected error for MANUAL type")
	}
}

func TestEligible(t *testing.T) {
	t.Parallel()

	bare := &domain.Word{ID: uuid.New(), Text: "bare", Translation: "голий"}

	tests := []struct {
		name string
		word *domain.Word
		typ  domain.QuestionType
		want bool
	}{
		{"input word always", bare, domain.QuestionTypeInputWord, true},
		{"choose translation always", bare, domain.QuestionTypeChooseTranslation, true},
		{"context needs example", bare, domain.QuestionTypeContextUsage, false},
		{"context with example", testWord(), domain.QuestionTypeContextUsage, true},
		{"synonym needs synonyms or antonyms", bare, domain.QuestionTypeSynonymMatch, false},
		{"synonym with antonyms only", &domain.Word{Antonyms: []string{"x"}}, domain.QuestionTypeSynonymMatch, true},
		{"audio needs audio", bare, domain.QuestionTypeAudioDictation, false},
		{"audio with audio", testWord(), domain.QuestionTypeAudioDictation, true},
		{"manual never", testWord(), domain.QuestionTypeManual, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Eligible(tt.word, tt.typ); got != tt.want {
				t.Errorf("Eligible(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestRandomEligibleType(t *testing.T) {
	t.Parallel()

	g := newTestGenerator()
	bare := &domain.Word{ID: uuid.New(), Text: "bare", Translation: "голий"}

	for range 50 {
		got := g.RandomEligibleType(bare)
		if got != domain.QuestionTypeInputWord && got != domain.QuestionTypeChooseTranslation {
			t.Fatalf("RandomEligibleType = %s, want an always-eligible type", got)
		}
	}

	full := testWord()
	seen := map[domain.QuestionType]bool{}
	for range 200 {
		seen[g.RandomEligibleType(full)] = true
	}
	if len(seen) != 5 {
		t.Errorf("saw %d types over 200 draws, want all 5: %v", len(seen), seen)
	}
}
