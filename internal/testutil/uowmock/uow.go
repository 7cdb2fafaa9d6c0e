package uowmock

import (
	"context"
	"errors"

	"workflow-platform-backend/internal/domain/submission"
	"workflow-platform-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinSubmissionTxFn func(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error
}

func New() *UoW { return &UoW{} }

// Wired returns a UoW whose transactional scopes are plain pass-throughs
// over the given repos: WithinSubmissionTx loads via
// Submissions.GetBySubmissionIDForUpdate exactly like the real
// implementation, minus the transaction.
func Wired(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinSubmissionTxFn: func(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
			s, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
			if err != nil {
				return err
			}
			return fn(r, s)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	if m.WithinSubmissionTxFn != nil {
		return m.WithinSubmissionTxFn(ctx, submissionID, fn)
	}
	return errUnimplemented
}
