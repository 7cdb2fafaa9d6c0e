package seed

import (
	"context"
	"testing"

	domainForm "workflow-platform-backend/internal/domain/form"
	domainTemplate "workflow-platform-backend/internal/domain/template"
	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/internal/testutil/formmock"
	"workflow-platform-backend/internal/testutil/templatemock"
	"workflow-platform-backend/internal/testutil/workflowmock"
	formUC "workflow-platform-backend/internal/usecase/form"
	workflowUC "workflow-platform-backend/internal/usecase/workflow"
)

type harness struct {
	seeder    *Seeder
	forms     []domainForm.Form
	workflows []domainWorkflow.Workflow
	templates []domainTemplate.Template
}

func newHarness(t *testing.T, existing int64) *harness {
	t.Helper()
	h := &harness{}
	forms := &formmock.Repo{
		CreateFn: func(ctx context.Context, f *domainForm.Form) error {
			h.forms = append(h.forms, *f)
			return nil
		},
	}
	workflows := &workflowmock.Repo{
		CreateFn: func(ctx context.Context, w *domainWorkflow.Workflow) error {
			h.workflows = append(h.workflows, *w)
			return nil
		},
	}
	templates := &templatemock.Repo{
		CreateFn: func(ctx context.Context, tm *domainTemplate.Template) error {
			h.templates = append(h.templates, *tm)
			return nil
		},
		CountFn: func(ctx context.Context) (int64, error) {
			return existing, nil
		},
	}
	h.seeder = NewSeeder(formUC.NewUsecase(forms), workflowUC.NewUsecase(workflows), templates)
	return h
}

func TestRun_InstallsFinanceTemplates(t *testing.T) {
	h := newHarness(t, 0)

	res, err := h.seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != "seeded" || len(res.Forms) != 3 {
		t.Fatalf("result = %+v, want seeded with 3 forms", res)
	}
	if len(h.forms) != 3 || len(h.workflows) != 3 || len(h.templates) != 3 {
		t.Fatalf("created forms=%d workflows=%d templates=%d, want 3 each",
			len(h.forms), len(h.workflows), len(h.templates))
	}

	wantKeys := []domainTemplate.Key{
		domainTemplate.KeyInvoiceApproval,
		domainTemplate.KeyExpenseReimbursement,
		domainTemplate.KeyPurchaseOrder,
	}
	wantSteps := []int{2, 1, 2}
	for i, tm := range h.templates {
		if tm.Key != wantKeys[i] {
			t.Fatalf("template %d key = %s, want %s", i, tm.Key, wantKeys[i])
		}
		if tm.FormID != h.forms[i].FormID || tm.WorkflowID != h.workflows[i].WorkflowID {
			t.Fatalf("template %s references form=%s workflow=%s, want %s/%s",
				tm.Key, tm.FormID, tm.WorkflowID, h.forms[i].FormID, h.workflows[i].WorkflowID)
		}
		if got := len(h.workflows[i].Steps); got != wantSteps[i] {
			t.Fatalf("workflow %s has %d steps, want %d", h.workflows[i].Name, got, wantSteps[i])
		}
		if h.workflows[i].Category != "Finance" {
			t.Fatalf("workflow %s category = %q", h.workflows[i].Name, h.workflows[i].Category)
		}
	}

	// Every step in the seeded workflows is an approval step with a role.
	for _, w := range h.workflows {
		for _, s := range w.Steps {
			if s.Kind != domainWorkflow.StepApproval || s.ApproverRole == "" {
				t.Fatalf("workflow %s step %q = %+v", w.Name, s.Name, s)
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	h := newHarness(t, 3)

	res, err := h.seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != "already_seeded" {
		t.Fatalf("status = %q, want already_seeded", res.Status)
	}
	if len(h.forms) != 0 || len(h.templates) != 0 {
		t.Fatalf("seeding ran despite existing templates")
	}
}
