package domain

import "testing"

func TestQuestionType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		qt   QuestionType
		want bool
	}{
		{QuestionTypeInputWord, true},
		{QuestionTypeChooseTranslation, true},
		{QuestionTypeContextUsage, true},
		{QuestionTypeSynonymMatch, true},
		{QuestionTypeAudioDictation, true},
		{QuestionTypeManual, true},
		{QuestionType("INVALID"), false},
		{QuestionType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.qt), func(t *testing.T) {
			t.Parallel()
			if got := tt.qt.IsValid(); got != tt.want {
				t.Errorf("QuestionType(%q).IsValid() = %v, want %v", tt.qt, got, tt.want)
			}
		})
	}
}

func TestAnswerResult_IsValid(t *testing.T) {
	t.Parallel()

	if !AnswerResultCorrect.IsValid() || !AnswerResultIncorrect.IsValid() {
		t.Error("expected canonical results to be valid")
	}
	if AnswerResult("MAYBE").IsValid() {
		t.Error("expected unknown result to be invalid")
	}
}

func TestSessionStatus_IsValid(t *testing.T) {
	t.Parallel()

	if !SessionStatusActive.IsValid() || !SessionStatusCompleted.IsValid() || !SessionStatusAbandoned.IsValid() {
		t.Error("expected canonical statuses to be valid")
	}
	if SessionStatus("PAUSED").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
}
