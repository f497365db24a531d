// Package question generates quiz prompts for words. Generation is pure:
// no side effects, no persistence, randomness comes from an injected source.
package question

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// BlankMarker replaces the target word in context sentences.
const BlankMarker = "_____"

const maxDistractors = 3

// fallbackTranslations is the fixed distractor pool for CHOOSE_TRANSLATION
// when the learner's own vocabulary cannot supply alternatives.
var fallbackTranslations = []string{
	"будинок", "вода", "сонце", "дорога",
	"книга", "час", "рука", "місто",
}

// fallbackFillers is the generic distractor pool for SYNONYM_MATCH.
var fallbackFillers = []string{
	"quick", "bright", "calm", "strong", "gentle", "plain",
}

// Generator builds questions from words. The zero value is not usable;
// construct with New.
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator. A nil source falls back to a randomly seeded one;
// tests inject a fixed seed for determinism.
func New(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rnd: rnd}
}

// Eligible reports whether a word has the data a question type needs.
// INPUT_WORD and CHOOSE_TRANSLATION are always eligible.
func Eligible(w *domain.Word, t domain.QuestionType) bool {
	switch t {
	case domain.QuestionTypeInputWord, domain.QuestionTypeChooseTranslation:
		return true
	case domain.QuestionTypeContextUsage:
		return len(w.Examples) > 0
	case domain.QuestionTypeSynonymMatch:
		return len(w.Synonyms) > 0 || len(w.Antonyms) > 0
	case domain.QuestionTypeAudioDictation:
		return w.PhoneticAudioURL != ""
	}
	return false
}

// RandomEligibleType picks one eligible question type at random, for callers
// that want per-word variety.
func (g *Generator) RandomEligibleType(w *domain.Word) domain.QuestionType {
	all := []domain.QuestionType{
		domain.QuestionTypeInputWord,
		domain.QuestionTypeChooseTranslation,
		domain.QuestionTypeContextUsage,
		domain.QuestionTypeSynonymMatch,
		domain.QuestionTypeAudioDictation,
	}
	eligible := all[:0]
	for _, t := range all {
		if Eligible(w, t) {
			eligible = append(eligible, t)
		}
	}
	return eligible[g.rnd.IntN(len(eligible))]
}

// Generate builds a question of the given type for the word. Types a word is
// not eligible for fall back to an always-eligible rendering rather than
// failing; only MANUAL and unknown types are errors.
func (g *Generator) Generate(w *domain.Word, t domain.QuestionType) (*domain.Question, error) {
	switch t {
	case domain.QuestionTypeInputWord:
		return g.inputWord(w), nil
	case domain.QuestionTypeChooseTranslation:
		return g.chooseTranslation(w), nil
	case domain.QuestionTypeContextUsage:
		return g.contextUsage(w), nil
	case domain.QuestionTypeSynonymMatch:
		return g.synonymMatch(w), nil
	case domain.QuestionTypeAudioDictation:
		return g.audioDictation(w), nil
	}
	return nil, domain.NewValidationError("questionType", fmt.Sprintf("cannot generate question of type %q", t))
}

func (g *Generator) inputWord(w *domain.Word) *domain.Question {
	return &domain.Question{
		Type:          domain.QuestionTypeInputWord,
		WordID:        w.ID,
		Prompt:        fmt.Sprintf("Which word means %q?", w.Translation),
		CorrectAnswer: domain.NormalizeAnswer(w.Text),
	}
}

func (g *Generator) chooseTranslation(w *domain.Word) *domain.Question {
	return &domain.Question{
		Type:          domain.QuestionTypeChooseTranslation,
		WordID:        w.ID,
		Prompt:        fmt.Sprintf("Choose the translation of %q", w.Text),
		CorrectAnswer: w.Translation,
		Options:       g.buildOptions(w.Translation, fallbackTranslations),
	}
}

func (g *Generator) contextUsage(w *domain.Word) *domain.Question {
	context := ""
	for _, example := range w.Examples {
		if blanked, ok := blankOut(example, w.Text); ok {
			context = blanked
			break
		}
	}
	if context == "" {
		// No usable example: fall back to a synthetic sentence so the
		// question always has a non-empty context with a blank marker.
		context = fmt.Sprintf("Fill in the missing word: %s means %q.", BlankMarker, w.Translation)
	}

	return &domain.Question{
		Type:          domain.QuestionTypeContextUsage,
		WordID:        w.ID,
		Prompt:        "Fill in the blank",
		CorrectAnswer: domain.NormalizeAnswer(w.Text),
		Context:       context,
	}
}

func (g *Generator) synonymMatch(w *domain.Word) *domain.Question {
	pool := w.Synonyms
	relation := "a synonym"
	if len(w.Antonyms) > 0 && (len(pool) == 0 || g.rnd.IntN(2) == 0) {
		pool = w.Antonyms
		relation = "an antonym"
	}
	if len(pool) == 0 {
		// Neither synonyms nor antonyms: degrade to a translation pick.
		return g.chooseTranslation(w)
	}

	return &domain.Question{
		Type:          domain.QuestionTypeSynonymMatch,
		WordID:        w.ID,
		Prompt:        fmt.Sprintf("Choose %s of %q", relation, w.Text),
		CorrectAnswer: pool[0],
		Options:       g.buildOptions(pool[0], fallbackFillers),
	}
}

func (g *Generator) audioDictation(w *domain.Word) *domain.Question {
	return &domain.Question{
		Type:          domain.QuestionTypeAudioDictation,
		WordID:        w.ID,
		Prompt:        "Type the word you hear",
		CorrectAnswer: domain.NormalizeAnswer(w.Text),
		AudioURL:      w.PhoneticAudioURL,
	}
}

// buildOptions assembles the multiple-choice list: the correct answer exactly
// once plus up to maxDistractors distinct pool entries, shuffled. Pool
// collisions with the correct answer are skipped, so the list always has at
// least two entries when the pool holds any non-colliding value.
func (g *Generator) buildOptions(correct string, pool []string) []string {
	options := []string{correct}
	seen := map[string]bool{domain.NormalizeAnswer(correct): true}

	for _, i := range g.rnd.Perm(len(pool)) {
		if len(options) > maxDistractors {
			break
		}
		candidate := pool[i]
		key := domain.NormalizeAnswer(candidate)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, candidate)
	}

	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// blankOut replaces the target word in the sentence with the blank marker,
// case-insensitively. Returns false if the sentence does not contain it.
func blankOut(sentence, target string) (string, bool) {
	lowerSentence := strings.ToLower(sentence)
	lowerTarget := strings.ToLower(strings.TrimSpace(target))
	if lowerTarget == "" {
		return "", false
	}

	idx := strings.Index(lowerSentence, lowerTarget)
	if idx < 0 {
		return "", false
	}

	var b strings.Builder
	for idx >= 0 {
		b.WriteString(sentence[:idx])
		b.WriteString(BlankMarker)
		sentence = sentence[idx+len(lowerTarget):]
		lowerSentence = lowerSentence[idx+len(lowerTarget):]
		idx = strings.Index(lowerSentence, lowerTarget)
	}
	b.WriteString(sentence)
	return b.String(), true
}
