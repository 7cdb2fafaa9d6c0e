package seed

import (
	"context"
	"log"

	domainForm "workflow-platform-backend/internal/domain/form"
	domainTemplate "workflow-platform-backend/internal/domain/template"
	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
	formUC "workflow-platform-backend/internal/usecase/form"
	workflowUC "workflow-platform-backend/internal/usecase/workflow"
)

// Seeder installs the pre-built finance templates: invoice approval,
// expense reimbursement and purchase order. Seeding is idempotent; a
// non-empty templates table short-circuits.
type Seeder struct {
	forms     *formUC.Usecase
	workflows *workflowUC.Usecase
	templates domainTemplate.Repository
}

func NewSeeder(forms *formUC.Usecase, workflows *workflowUC.Usecase, templates domainTemplate.Repository) *Seeder {
	return &Seeder{forms: forms, workflows: workflows, templates: templates}
}

type Result struct {
	Status string   `json:"status"` // "seeded" or "already_seeded"
	Forms  []string `json:"forms,omitempty"`
}

type templateDef struct {
	key         domainTemplate.Key
	name        string
	description string
	form        formUC.DefineInput
	steps       []domainWorkflow.Step
	wfName      string
	wfDesc      string
}

func defs() []templateDef {
	managerReview := domainWorkflow.Step{Name: "Manager Review", Kind: domainWorkflow.StepApproval, ApproverRole: domainWorkflow.RoleApprover}
	financeApproval := domainWorkflow.Step{Name: "Finance Approval", Kind: domainWorkflow.StepApproval, ApproverRole: domainWorkflow.RoleAdmin}

	return []templateDef{
		{
			key:         domainTemplate.KeyInvoiceApproval,
			name:        "Invoice Approval",
			description: "Vendor invoice approval",
			form: formUC.DefineInput{
				Name:        "Invoice Approval",
				Description: "Submit vendor invoice for approval",
				Fields: []domainForm.Field{
					{Key: "vendor", Label: "Vendor", Type: domainForm.FieldText, Required: true},
					{Key: "invoice_number", Label: "Invoice #", Type: domainForm.FieldText, Required: true},
					{Key: "amount", Label: "Amount", Type: domainForm.FieldCurrency, Required: true},
					{Key: "due_date", Label: "Due Date", Type: domainForm.FieldDate},
					{Key: "attachment", Label: "Attachment", Type: domainForm.FieldFile},
				},
			},
			wfName: "Invoice Approval Workflow",
			wfDesc: "Manager approval then finance approval",
			steps:  []domainWorkflow.Step{managerReview, financeApproval},
		},
		{
			key:         domainTemplate.KeyExpenseReimbursement,
			name:        "Expense Reimbursement",
			description: "Employee expenses",
			form: formUC.DefineInput{
				Name:        "Expense Reimbursement",
				Description: "Claim employee expenses",
				Fields: []domainForm.Field{
					{Key: "employee", Label: "Employee", Type: domainForm.FieldText, Required: true},
					{Key: "category", Label: "Category", Type: domainForm.FieldSelect, Options: []string{"Travel", "Meals", "Office"}, Required: true},
					{Key: "amount", Label: "Amount", Type: domainForm.FieldCurrency, Required: true},
					{Key: "notes", Label: "Notes", Type: domainForm.FieldTextarea},
				},
			},
			wfName: "Expense Reimbursement Workflow",
			wfDesc: "Manager approval",
			steps:  []domainWorkflow.Step{managerReview},
		},
		{
			key:         domainTemplate.KeyPurchaseOrder,
			name:        "Purchase Order",
			description: "PO creation and approval",
			form: formUC.DefineInput{
				Name:        "Purchase Order",
				Description: "Create purchase order",
				Fields: []domainForm.Field{
					{Key: "requester", Label: "Requester", Type: domainForm.FieldText, Required: true},
					{Key: "item", Label: "Item", Type: domainForm.FieldText, Required: true},
					{Key: "quantity", Label: "Quantity", Type: domainForm.FieldNumber, Required: true},
					{Key: "unit_price", Label: "Unit Price", Type: domainForm.FieldCurrency, Required: true},
				},
			},
			wfName: "Purchase Order Workflow",
			wfDesc: "Manager then finance approval",
			steps:  []domainWorkflow.Step{managerReview, financeApproval},
		},
	}
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	existing, err := s.templates.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &Result{Status: "already_seeded"}, nil
	}

	res := &Result{Status: "seeded"}
	for _, d := range defs() {
		f, err := s.forms.Define(ctx, d.form)
		if err != nil {
			return nil, err
		}
		w, err := s.workflows.Define(ctx, workflowUC.DefineInput{
			Name:        d.wfName,
			Description: d.wfDesc,
			FormID:      f.FormID,
			Steps:       d.steps,
			Category:    "Finance",
		})
		if err != nil {
			return nil, err
		}
		if err := s.templates.Create(ctx, &domainTemplate.Template{
			Key:         d.key,
			Name:        d.name,
			Description: d.description,
			FormID:      f.FormID,
			WorkflowID:  w.WorkflowID,
		}); err != nil {
			return nil, err
		}
		res.Forms = append(res.Forms, f.FormID)
		log.Printf("seed: installed template %s (form=%s workflow=%s)", d.key, f.FormID, w.WorkflowID)
	}
	return res, nil
}
