package training

import (
	"context"
	"errors"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

// Skip moves past the current word without scoring it. On the last word it
// terminates the session instead, without recording a result for that word.
func (e *Engine) Skip(ctx context.Context) (*domain.Question, error) {
	return e.advance(ctx)
}

// Next is Skip under a different affordance: same navigation, same terminal
// behavior on the last word.
func (e *Engine) Next(ctx context.Context) (*domain.Question, error) {
	return e.advance(ctx)
}

func (e *Engine) advance(ctx context.Context) (*domain.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() {
		return nil, domain.ErrNoActiveSession
	}

	var errs []error

	if e.session.CurrentIndex >= len(e.wordList)-1 {
		e.complete(ctx, &errs)
		e.lastErr = errors.Join(errs...)
		return nil, nil
	}

	w := e.wordList[e.session.CurrentIndex]
	e.session.CompletedWordIDs = append(e.session.CompletedWordIDs, w.ID)
	e.session.CurrentIndex++

	e.persistProgress(ctx, &errs)
	q := e.present(ctx, &errs)
	e.lastErr = errors.Join(errs...)
	return q, nil
}

// Previous rewinds the display one word back and regenerates its question.
// Nothing is re-scored or re-persisted. At index 0 it is a no-op returning
// the current question.
func (e *Engine) Previous(ctx context.Context) (*domain.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inProgress() {
		return nil, domain.ErrNoActiveSession
	}

	if e.session.CurrentIndex == 0 {
		return e.question, nil
	}

	e.session.CurrentIndex--
	w := e.wordList[e.session.CurrentIndex]

	q, err := e.gen.Generate(w, e.questionType())
	if err != nil {
		return nil, err
	}
	e.question = q
	return q, nil
}
