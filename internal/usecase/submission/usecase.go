package submission

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domainForm "workflow-platform-backend/internal/domain/form"
	domain "workflow-platform-backend/internal/domain/submission"
	"workflow-platform-backend/internal/domain/uow"
	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/pkg/id"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Usecase struct {
	forms     domainForm.Repository
	workflows domainWorkflow.Repository
	subs      domain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(forms domainForm.Repository, workflows domainWorkflow.Repository, subs domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{forms: forms, workflows: workflows, subs: subs, uow: tx}
}

// Submit is the intake path: every submission starts at status pending and
// step index 0. The data payload is validated against the referenced form
// before anything is written.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmissionDTO, error) {
	f, err := u.forms.GetByFormID(ctx, in.FormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainForm.ErrNotFound
		}
		return nil, err
	}
	if in.WorkflowID != "" {
		if _, err := u.workflows.GetByWorkflowID(ctx, in.WorkflowID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainWorkflow.ErrNotFound
			}
			return nil, err
		}
	}

	if in.Data == nil {
		in.Data = map[string]any{}
	}
	if err := validateData(f, in.Data); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(in.Data)
	if err != nil {
		return nil, err
	}

	s := &domain.Submission{
		SubmissionID:     id.NewID32(),
		FormID:           f.FormID,
		WorkflowID:       in.WorkflowID,
		Data:             datatypes.JSON(raw),
		Status:           domain.StatusPending,
		CurrentStepIndex: 0,
		RequesterID:      in.RequesterID,
		StatusUpdatedAt:  time.Now().UTC(),
	}
	if err := u.subs.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s, in.Data), nil
}

func (u *Usecase) Get(ctx context.Context, submissionID string) (*SubmissionDTO, error) {
	s, err := u.subs.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(s, decodeData(s.Data)), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]SubmissionDTO, error) {
	items, err := u.subs.List(ctx, domain.ListFilter{
		Status:     domain.Status(in.Status),
		WorkflowID: in.WorkflowID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i], decodeData(items[i].Data)))
	}
	return out, nil
}

// Archive moves an approved or rejected submission to the terminal
// archived status. It is not an approval action: no log row is appended.
func (u *Usecase) Archive(ctx context.Context, in ArchiveInput) (*ArchiveDTO, error) {
	var dto *ArchiveDTO
	err := u.uow.WithinSubmissionTx(ctx, in.SubmissionID, func(r uow.Repos, s *domain.Submission) error {
		if s.Status != domain.StatusApproved && s.Status != domain.StatusRejected {
			return domain.ErrInvalidTransition
		}
		s.Status = domain.StatusArchived
		s.StatusUpdatedAt = time.Now().UTC()
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		var n int64
		if in.ArchiveDocuments {
			var err error
			n, err = r.Documents.ArchiveBySubmissionID(ctx, s.ID)
			if err != nil {
				return err
			}
		}
		dto = &ArchiveDTO{
			SubmissionID:      s.SubmissionID,
			Status:            string(s.Status),
			DocumentsArchived: n,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func decodeData(raw datatypes.JSON) map[string]any {
	out := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}
