package approval

import (
	"context"
	"errors"
	"log"
	"time"

	domainApproval "workflow-platform-backend/internal/domain/approval"
	domainSubmission "workflow-platform-backend/internal/domain/submission"
	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/internal/domain/uow"
	"workflow-platform-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the approval engine: the only component that moves a
// submission's status or step index. Every successful action appends
// exactly one approval log row in the same transaction as the status
// write.
type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Act applies one approve/reject action to a pending submission. The
// submission row is locked for the whole transition, so two concurrent
// actions against the same submission serialize; the loser re-reads a
// non-pending row and fails with ErrInvalidTransition.
func (u *Usecase) Act(ctx context.Context, in ActInput) (*ActionDTO, error) {
	if u.uow == nil {
		return nil, domainSubmission.ErrConflict
	}
	var dto *ActionDTO

	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		// Status guard: only pending submissions accept actions
		if s.Status != domainSubmission.StatusPending {
			return domainSubmission.ErrInvalidTransition
		}
		if !in.Action.Valid() {
			return domainSubmission.ErrInvalidAction
		}

		// Resolve the approval step currently awaited, if a workflow with
		// steps is attached. A dangling workflow reference degrades to the
		// workflow-less single-step behavior.
		var wf *domainWorkflow.Workflow
		if s.WorkflowID != "" {
			loaded, err := r.Workflows.GetByWorkflowID(ctx, s.WorkflowID)
			switch {
			case err == nil:
				wf = loaded
			case errors.Is(err, gorm.ErrRecordNotFound):
				log.Printf("approval: submission %s references missing workflow %s", s.SubmissionID, s.WorkflowID)
			default:
				return err
			}
		}

		stepName := ""
		stepResolved := false
		stepPos := 0
		if wf != nil {
			if step, pos, ok := wf.ApprovalStepAt(s.CurrentStepIndex); ok {
				stepName = step.Name
				stepPos = pos
				stepResolved = true
			}
		}

		now := time.Now().UTC()
		switch in.Action {
		case domainApproval.ActionRejected:
			// Rejection is terminal from any step
			s.Status = domainSubmission.StatusRejected
		case domainApproval.ActionApproved:
			if stepResolved && wf.HasApprovalStepAfter(stepPos) {
				// Not the last approval step: advance, stay pending
				s.CurrentStepIndex = stepPos + 1
			} else {
				s.Status = domainSubmission.StatusApproved
			}
		}
		s.StatusUpdatedAt = now
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}

		a := &domainApproval.Approval{
			ApprovalID:   id.NewID32(),
			SubmissionID: s.ID, // numeric FK
			StepName:     stepName,
			ActorID:      in.ActorID,
			Action:       in.Action,
			Comment:      in.Comment,
		}
		if err := r.Approvals.Create(ctx, a); err != nil {
			return err
		}

		dto = &ActionDTO{
			ApprovalID:       a.ApprovalID,
			SubmissionID:     s.SubmissionID, // public id
			Action:           string(in.Action),
			StepName:         stepName,
			Status:           string(s.Status),
			CurrentStepIndex: s.CurrentStepIndex,
			ActedAt:          now,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Trail returns the append-only approval log of a submission, oldest
// action first.
func (u *Usecase) Trail(ctx context.Context, submissionID string) ([]domainApproval.Approval, error) {
	var out []domainApproval.Approval
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Submissions.GetBySubmissionID(ctx, submissionID)
		if err != nil {
			return err
		}
		out, err = r.Approvals.ListBySubmissionID(ctx, s.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
