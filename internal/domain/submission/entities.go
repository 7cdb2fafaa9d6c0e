package submission

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrNotFound          = errors.New("submission not found")
	ErrInvalidTransition = errors.New("invalid transition for current submission status")
	ErrInvalidAction     = errors.New("invalid approval action")
	ErrConflict          = errors.New("concurrent transition conflict")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

// Terminal reports whether no further approval action is accepted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusArchived
}

type Submission struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	SubmissionID string `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_submissions_submission_id" json:"submission_id"`
	// Public id of the form the data conforms to (required).
	FormID string `gorm:"column:form_id;type:char(32);not null;index:idx_submissions_form" json:"form_id"`
	// Public id of the attached workflow; empty means workflow-less,
	// single-step approval.
	WorkflowID string         `gorm:"column:workflow_id;type:char(32);index:idx_submissions_workflow" json:"workflow_id,omitempty"`
	Data       datatypes.JSON `gorm:"column:data;type:json" json:"data"`
	Status     Status         `gorm:"column:status;type:enum('pending','approved','rejected','archived');default:'pending';index:idx_submissions_status" json:"status"`
	// Index into the workflow's step list of the step currently awaited.
	// Only the approval engine may move it.
	CurrentStepIndex int       `gorm:"column:current_step_index;not null;default:0" json:"current_step_index"`
	RequesterID      string    `gorm:"column:requester_id;type:char(32)" json:"requester_id,omitempty"`
	StatusUpdatedAt  time.Time `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string { return "submissions" }

// ValidationError reports submission data that does not conform to the
// form's field definitions. Fields maps offending keys to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "submission data validation failed: " + strings.Join(parts, "; ")
}
