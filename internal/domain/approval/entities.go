package approval

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("approval not found")

type Action string

const (
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

func (a Action) Valid() bool { return a == ActionApproved || a == ActionRejected }

// Approval is one immutable audit-log row: exactly one per successful
// approve/reject action against a submission. Never updated or deleted.
type Approval struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ApprovalID string `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_approvals_approval_id"`
	// FK to submissions.id (numeric)
	SubmissionID uint64    `gorm:"column:submission_id;not null;index:idx_approvals_submission"`
	StepName     string    `gorm:"column:step_name;size:255"`
	ActorID      string    `gorm:"column:actor_id;type:char(32)"`
	Action       Action    `gorm:"column:action;type:enum('approved','rejected');not null"`
	Comment      string    `gorm:"column:comment;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Approval) TableName() string { return "approvals" }
