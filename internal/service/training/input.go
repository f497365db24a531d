package training

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// StartInput holds the selection criteria for a new session.
type StartInput struct {
	// SelectedStatuses is the set of status levels to include. An empty set
	// selects no words, so Start reports no eligible words.
	SelectedStatuses []domain.WordStatus
	// SourceIDs optionally restricts selection to words extracted from at
	// least one of the listed source collections.
	SourceIDs []uuid.UUID
	// SessionSize is the maximum number of words per session; 0 means the
	// configured default.
	SessionSize int
	// QuestionTypes is the non-empty ordered list of enabled types. The
	// engine drives the whole session with the first one.
	QuestionTypes []domain.QuestionType
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	for _, s := range i.SelectedStatuses {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   "selected_statuses",
				Message: fmt.Sprintf("status %d out of range [%d, %d]", s, domain.MinWordStatus, domain.MaxWordStatus),
			})
			break
		}
	}
	if i.SessionSize < 0 {
		errs = append(errs, domain.FieldError{Field: "session_size", Message: "must be non-negative"})
	}
	if len(i.QuestionTypes) == 0 {
		errs = append(errs, domain.FieldError{Field: "question_types", Message: "at least one question type required"})
	}
	for _, t := range i.QuestionTypes {
		if !t.IsValid() || t == domain.QuestionTypeManual {
			errs = append(errs, domain.FieldError{
				Field:   "question_types",
				Message: fmt.Sprintf("type %q cannot drive a session", t),
			})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
