package uow

import (
	"context"

	"workflow-platform-backend/internal/domain/approval"
	"workflow-platform-backend/internal/domain/document"
	"workflow-platform-backend/internal/domain/form"
	"workflow-platform-backend/internal/domain/submission"
	"workflow-platform-backend/internal/domain/workflow"
)

type Repos struct {
	Forms       form.Repository
	Workflows   workflow.Repository
	Submissions submission.Repository
	Approvals   approval.Repository
	Documents   document.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the submission row first, then pass it in. The
	// lock is held until the tx commits or rolls back, so at most one
	// transition per submission is in flight.
	WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r Repos, s *submission.Submission) error) error
}
