package document

import "context"

// ListFilter narrows List results. SubmissionID is the numeric FK
// (0 = any); Archived nil means both archived and live documents.
type ListFilter struct {
	SubmissionID uint64
	Archived     *bool
}

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocumentID(ctx context.Context, documentID string) (*Document, error)
	Save(ctx context.Context, d *Document) error
	List(ctx context.Context, f ListFilter) ([]Document, error)
	// ArchiveBySubmissionID flips the archived flag on every document of a
	// submission, returning the number of rows touched.
	ArchiveBySubmissionID(ctx context.Context, submissionID uint64) (int64, error)
}
