package submission

import "context"

// ListFilter narrows List results; zero values mean no filter.
type ListFilter struct {
	Status     Status
	WorkflowID string
}

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	// GetBySubmissionIDForUpdate locks the row for the duration of the
	// surrounding transaction. Only meaningful inside a UnitOfWork tx.
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	Save(ctx context.Context, s *Submission) error
	List(ctx context.Context, f ListFilter) ([]Submission, error)
}
