package formmock

import (
	"context"

	domain "workflow-platform-backend/internal/domain/form"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the fields a test needs.
type Repo struct {
	CreateFn      func(ctx context.Context, f *domain.Form) error
	GetByFormIDFn func(ctx context.Context, formID string) (*domain.Form, error)
	ListFn        func(ctx context.Context, orgID string) ([]domain.Form, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, f *domain.Form) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByFormID(ctx context.Context, formID string) (*domain.Form, error) {
	if m.GetByFormIDFn != nil {
		return m.GetByFormIDFn(ctx, formID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, orgID string) ([]domain.Form, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, orgID)
	}
	return nil, context.Canceled
}
