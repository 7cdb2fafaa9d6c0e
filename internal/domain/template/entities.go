package template

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("template not found")

type Key string

const (
	KeyInvoiceApproval      Key = "invoice_approval"
	KeyExpenseReimbursement Key = "expense_reimbursement"
	KeyPurchaseOrder        Key = "purchase_order"
)

// Template pairs a pre-built form with its workflow so tenants can start
// from a known-good finance process.
type Template struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Key         Key    `gorm:"column:template_key;size:64;not null;uniqueIndex:ux_templates_key" json:"key"`
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	// Public ids of the seeded form and workflow
	FormID     string    `gorm:"column:form_id;type:char(32);not null" json:"form_id"`
	WorkflowID string    `gorm:"column:workflow_id;type:char(32);not null" json:"workflow_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Template) TableName() string { return "templates" }
