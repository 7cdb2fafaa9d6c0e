package templatemock

import (
	"context"

	domain "workflow-platform-backend/internal/domain/template"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn func(ctx context.Context, t *domain.Template) error
	CountFn  func(ctx context.Context) (int64, error)
	ListFn   func(ctx context.Context) ([]domain.Template, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.Template) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Template, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
