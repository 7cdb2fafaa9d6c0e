package documentmock

import (
	"context"

	domain "workflow-platform-backend/internal/domain/document"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, d *domain.Document) error
	GetByDocumentIDFn       func(ctx context.Context, documentID string) (*domain.Document, error)
	SaveFn                  func(ctx context.Context, d *domain.Document) error
	ListFn                  func(ctx context.Context, f domain.ListFilter) ([]domain.Document, error)
	ArchiveBySubmissionIDFn func(ctx context.Context, submissionID uint64) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocumentID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDFn != nil {
		return m.GetByDocumentIDFn(ctx, documentID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Document, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ArchiveBySubmissionID(ctx context.Context, submissionID uint64) (int64, error) {
	if m.ArchiveBySubmissionIDFn != nil {
		return m.ArchiveBySubmissionIDFn(ctx, submissionID)
	}
	return 0, context.Canceled
}
