package submission

import (
	"time"

	domain "workflow-platform-backend/internal/domain/submission"
)

type SubmitInput struct {
	FormID      string
	WorkflowID  string
	Data        map[string]any
	RequesterID string
}

type ListInput struct {
	Status     string
	WorkflowID string
}

type ArchiveInput struct {
	SubmissionID string
	// Also flip the archived flag on the submission's documents.
	ArchiveDocuments bool
}

type SubmissionDTO struct {
	SubmissionID     string         `json:"submission_id"`
	FormID           string         `json:"form_id"`
	WorkflowID       string         `json:"workflow_id,omitempty"`
	Data             map[string]any `json:"data"`
	Status           string         `json:"status"`
	CurrentStepIndex int            `json:"current_step_index"`
	RequesterID      string         `json:"requester_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	StatusUpdatedAt  time.Time      `json:"status_updated_at"`
}

type ArchiveDTO struct {
	SubmissionID      string `json:"submission_id"`
	Status            string `json:"status"`
	DocumentsArchived int64  `json:"documents_archived"`
}

func toDTO(s *domain.Submission, data map[string]any) *SubmissionDTO {
	return &SubmissionDTO{
		SubmissionID:     s.SubmissionID,
		FormID:           s.FormID,
		WorkflowID:       s.WorkflowID,
		Data:             data,
		Status:           string(s.Status),
		CurrentStepIndex: s.CurrentStepIndex,
		RequesterID:      s.RequesterID,
		CreatedAt:        s.CreatedAt,
		StatusUpdatedAt:  s.StatusUpdatedAt,
	}
}
