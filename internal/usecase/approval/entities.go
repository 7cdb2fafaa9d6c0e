package approval

import (
	"time"

	domainApproval "workflow-platform-backend/internal/domain/approval"
)

type ActInput struct {
	SubmissionID string
	Action       domainApproval.Action
	ActorID      string
	Comment      string
}

// ActionDTO reports the outcome of one approve/reject action.
type ActionDTO struct {
	ApprovalID   string `json:"approval_id"`
	SubmissionID string `json:"submission_id"`
	Action       string `json:"action"`
	// Name of the workflow step the action was applied to, when one could
	// be resolved.
	StepName         string    `json:"step_name,omitempty"`
	Status           string    `json:"status"`
	CurrentStepIndex int       `json:"current_step_index"`
	ActedAt          time.Time `json:"acted_at"`
}
