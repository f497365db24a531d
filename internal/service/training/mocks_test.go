package training

import (
	"context"

	"github.com/google/uuid"

	"github.com/wordbox/wordbox-backend/internal/domain"
)

var (
	_ wordRepo    = &wordRepoMock{}
	_ sessionRepo = &sessionRepoMock{}
	_ resultRepo  = &resultRepoMock{}
	_ translator  = &translatorMock{}
)

type wordRepoMock struct {
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]*domain.Word, error)
	UpdateFunc        func(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (*domain.Word, error)
	SoftDeleteFunc    func(ctx context.Context, userID, wordID uuid.UUID) error
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.WordStatusCounts, error)

	UpdateCalls []struct {
		WordID uuid.UUID
		Params domain.WordUpdateParams
	}
	SoftDeleteCalls []uuid.UUID
}

func (m *wordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]*domain.Word, error) {
	if m.ListByUserFunc == nil {
		panic("wordRepoMock.ListByUserFunc is nil")
	}
	return m.ListByUserFunc(ctx, userID, filter)
}

func (m *wordRepoMock) Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (*domain.Word, error) {
	m.UpdateCalls = append(m.UpdateCalls, struct {
		WordID uuid.UUID
		Params domain.WordUpdateParams
	}{wordID, params})
	if m.UpdateFunc == nil {
		return nil, nil
	}
	return m.UpdateFunc(ctx, userID, wordID, params)
}

func (m *wordRepoMock) SoftDelete(ctx context.Context, userID, wordID uuid.UUID) error {
	m.SoftDeleteCalls = append(m.SoftDeleteCalls, wordID)
	if m.SoftDeleteFunc == nil {
		return nil
	}
	return m.SoftDeleteFunc(ctx, userID, wordID)
}

func (m *wordRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.WordStatusCounts, error) {
	if m.CountByStatusFunc == nil {
		panic("wordRepoMock.CountByStatusFunc is nil")
	}
	return m.CountByStatusFunc(ctx, userID)
}

type sessionRepoMock struct {
	CreateFunc     func(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error)
	UpdateFunc     func(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionUpdateParams) (*domain.TrainingSession, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.TrainingSession, int, error)

	CreateCalls []*domain.TrainingSession
	UpdateCalls []domain.SessionUpdateParams
}

func (m *sessionRepoMock) Create(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error) {
	m.CreateCalls = append(m.CreateCalls, session)
	if m.CreateFunc == nil {
		return session, nil
	}
	return m.CreateFunc(ctx, session)
}

func (m *sessionRepoMock) Update(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionUpdateParams) (*domain.TrainingSession, error) {
	m.UpdateCalls = append(m.UpdateCalls, params)
	if m.UpdateFunc == nil {
		return nil, nil
	}
	return m.UpdateFunc(ctx, userID, sessionID, params)
}

func (m *sessionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.TrainingSession, int, error) {
	if m.ListByUserFunc == nil {
		panic("sessionRepoMock.ListByUserFunc is nil")
	}
	return m.ListByUserFunc(ctx, userID, limit, offset)
}

type resultRepoMock struct {
	CreateFunc func(ctx context.Context, result *domain.TrainingResult) (*domain.TrainingResult, error)

	CreateCalls []*domain.TrainingResult
}

func (m *resultRepoMock) Create(ctx context.Context, result *domain.TrainingResult) (*domain.TrainingResult, error) {
	m.CreateCalls = append(m.CreateCalls, result)
	if m.CreateFunc == nil {
		return result, nil
	}
	return m.CreateFunc(ctx, result)
}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text string) (string, error)

	TranslateCalls []string
}

func (m *translatorMock) Translate(ctx context.Context, text string) (string, error) {
	m.TranslateCalls = append(m.TranslateCalls, text)
	if m.TranslateFunc == nil {
		return "", nil
	}
	return m.TranslateFunc(ctx, text)
}
