package domain

// QuestionType identifies how a word is quizzed during training.
type QuestionType string

const (
	QuestionTypeInputWord         QuestionType = "INPUT_WORD"
	QuestionTypeChooseTranslation QuestionType = "CHOOSE_TRANSLATION"
	QuestionTypeContextUsage      QuestionType = "CONTEXT_USAGE"
	QuestionTypeSynonymMatch      QuestionType = "SYNONYM_MATCH"
	QuestionTypeAudioDictation    QuestionType = "AUDIO_DICTATION"
	// QuestionTypeManual is never generated; it marks a direct status edit
	// recorded outside the quiz flow.
	QuestionTypeManual QuestionType = "MANUAL"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeInputWord, QuestionTypeChooseTranslation, QuestionTypeContextUsage,
		QuestionTypeSynonymMatch, QuestionTypeAudioDictation, QuestionTypeManual:
		return true
	}
	return false
}

// AnswerResult represents the outcome recorded for one answered word.
type AnswerResult string

const (
	AnswerResultCorrect   AnswerResult = "CORRECT"
	AnswerResultIncorrect AnswerResult = "INCORRECT"
)

func (r AnswerResult) String() string { return string(r) }

func (r AnswerResult) IsValid() bool {
	switch r {
	case AnswerResultCorrect, AnswerResultIncorrect:
		return true
	}
	return false
}

// SessionStatus represents the state of a training session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}
