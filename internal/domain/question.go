package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Question is an ephemeral quiz prompt generated fresh for one word.
// It is never persisted; only the result of answering it is.
type Question struct {
	Type          QuestionType
	WordID        uuid.UUID
	Prompt        string
	CorrectAnswer string
	// Options is set only for multiple-choice types: the correct answer plus
	// up to three distractors, shuffled.
	Options []string
	// Context is set only for CONTEXT_USAGE: a sentence with the target word
	// replaced by a blank marker.
	Context string
	// AudioURL is set only for AUDIO_DICTATION.
	AudioURL string
}

// NormalizeAnswer prepares a learner's answer for comparison:
// lower-cased, leading/trailing whitespace removed.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer compares the learner's answer against the correct one.
// Comparison is case-insensitive and ignores surrounding whitespace;
// multiple-choice selections are compared the same way.
func (q *Question) CheckAnswer(answer string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(q.CorrectAnswer)
}
