package approval

import "context"

type Repository interface {
	// Create appends a new log row (append-only, never updated)
	Create(ctx context.Context, a *Approval) error

	// ListBySubmissionID returns all log rows for a submission (numeric
	// FK), oldest first
	ListBySubmissionID(ctx context.Context, submissionID uint64) ([]Approval, error)

	// CountBySubmissionID returns the number of log rows for a submission
	CountBySubmissionID(ctx context.Context, submissionID uint64) (int64, error)

	// GetByApprovalID fetches by public approval_id
	GetByApprovalID(ctx context.Context, approvalID string) (*Approval, error)
}
