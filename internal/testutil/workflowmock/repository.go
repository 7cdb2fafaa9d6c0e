package workflowmock

import (
	"context"

	domain "workflow-platform-backend/internal/domain/workflow"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, w *domain.Workflow) error
	GetByWorkflowIDFn func(ctx context.Context, workflowID string) (*domain.Workflow, error)
	ListFn            func(ctx context.Context, orgID, category string) ([]domain.Workflow, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, w *domain.Workflow) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByWorkflowID(ctx context.Context, workflowID string) (*domain.Workflow, error) {
	if m.GetByWorkflowIDFn != nil {
		return m.GetByWorkflowIDFn(ctx, workflowID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, orgID, category string) ([]domain.Workflow, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, orgID, category)
	}
	return nil, context.Canceled
}
