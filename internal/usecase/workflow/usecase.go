package workflow

import (
	"context"
	"errors"
	"fmt"

	domain "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type DefineInput struct {
	Name        string
	Description string
	FormID      string
	Steps       []domain.Step
	OrgID       string
	Category    string
}

// Define stores a new workflow. A zero-step workflow is legal and denotes
// single-step approval: the first action on a submission is terminal.
func (u *Usecase) Define(ctx context.Context, in DefineInput) (*domain.Workflow, error) {
	if in.Name == "" {
		return nil, errors.New("workflow name is required")
	}
	for i, st := range in.Steps {
		if st.Name == "" {
			return nil, fmt.Errorf("step %d: name is required", i)
		}
		switch st.Kind {
		case "":
			in.Steps[i].Kind = domain.StepApproval
		case domain.StepApproval, domain.StepAuto:
		default:
			return nil, fmt.Errorf("step %q: unknown kind %q", st.Name, st.Kind)
		}
		if in.Steps[i].Kind == domain.StepApproval {
			switch st.ApproverRole {
			case "":
				in.Steps[i].ApproverRole = domain.RoleApprover
			case domain.RoleApprover, domain.RoleAdmin:
			default:
				return nil, fmt.Errorf("step %q: unknown approver role %q", st.Name, st.ApproverRole)
			}
		}
	}

	w := &domain.Workflow{
		WorkflowID:  id.NewID32(),
		Name:        in.Name,
		Description: in.Description,
		FormID:      in.FormID,
		Steps:       in.Steps,
		OrgID:       in.OrgID,
		Category:    in.Category,
	}
	if err := u.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Usecase) Get(ctx context.Context, workflowID string) (*domain.Workflow, error) {
	w, err := u.repo.GetByWorkflowID(ctx, workflowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (u *Usecase) List(ctx context.Context, orgID, category string) ([]domain.Workflow, error) {
	return u.repo.List(ctx, orgID, category)
}
