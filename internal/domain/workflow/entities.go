package workflow

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("workflow not found")

type StepKind string

const (
	StepApproval StepKind = "approval"
	StepAuto     StepKind = "auto"
)

type ApproverRole string

const (
	RoleApprover ApproverRole = "approver"
	RoleAdmin    ApproverRole = "admin"
)

// Step is one entry of a workflow's ordered step list. ApproverRole is
// only meaningful for approval steps; OnApprove is an optional routing
// hint carried verbatim.
type Step struct {
	Name         string       `json:"name"`
	Kind         StepKind     `json:"kind"`
	ApproverRole ApproverRole `json:"approver_role,omitempty"`
	OnApprove    string       `json:"on_approve,omitempty"`
}

type Workflow struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	WorkflowID  string    `gorm:"column:workflow_id;type:char(32);not null;uniqueIndex:ux_workflows_workflow_id" json:"workflow_id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	// Public id of the form this workflow is meant for (optional).
	FormID    string    `gorm:"column:form_id;type:char(32)" json:"form_id,omitempty"`
	Steps     []Step    `gorm:"column:steps;type:json;serializer:json" json:"steps"`
	OrgID     string    `gorm:"column:org_id;type:char(32);index:idx_workflows_org" json:"org_id,omitempty"`
	Category  string    `gorm:"column:category;size:64;index:idx_workflows_category" json:"category,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Workflow) TableName() string { return "workflows" }

// ApprovalStepAt resolves the approval step a submission at step index idx
// is waiting on: the first step at or after idx whose kind is approval.
// Auto steps never demand an action and are skipped. The returned position
// is the index of the resolved step within Steps.
func (w *Workflow) ApprovalStepAt(idx int) (Step, int, bool) {
	if idx < 0 {
		idx = 0
	}
	for i := idx; i < len(w.Steps); i++ {
		if w.Steps[i].Kind == StepApproval {
			return w.Steps[i], i, true
		}
	}
	return Step{}, 0, false
}

// HasApprovalStepAfter reports whether another approval step exists
// strictly beyond position pos.
func (w *Workflow) HasApprovalStepAfter(pos int) bool {
	_, _, ok := w.ApprovalStepAt(pos + 1)
	return ok
}
