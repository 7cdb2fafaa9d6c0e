package approvalmock

import (
	"context"

	domain "workflow-platform-backend/internal/domain/approval"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Approval) error
	ListBySubmissionIDFn  func(ctx context.Context, submissionID uint64) ([]domain.Approval, error)
	CountBySubmissionIDFn func(ctx context.Context, submissionID uint64) (int64, error)
	GetByApprovalIDFn     func(ctx context.Context, approvalID string) (*domain.Approval, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListBySubmissionID(ctx context.Context, submissionID uint64) ([]domain.Approval, error) {
	if m.ListBySubmissionIDFn != nil {
		return m.ListBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountBySubmissionID(ctx context.Context, submissionID uint64) (int64, error) {
	if m.CountBySubmissionIDFn != nil {
		return m.CountBySubmissionIDFn(ctx, submissionID)
	}
	return 0, context.Canceled
}

func (m *Repo) GetByApprovalID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	if m.GetByApprovalIDFn != nil {
		return m.GetByApprovalIDFn(ctx, approvalID)
	}
	return nil, context.Canceled
}
