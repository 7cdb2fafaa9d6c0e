package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/internal/testutil/workflowmock"
	uc "workflow-platform-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func TestCreateWorkflow_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &workflowmock.Repo{
		CreateFn: func(ctx context.Context, w *domain.Workflow) error { return nil },
	}
	h := NewWorkflowHandler(uc.NewUsecase(repo))

	reqBody := map[string]any{
		"name":     "Invoice Approval Workflow",
		"category": "Finance",
		"steps": []map[string]any{
			{"name": "Manager Review", "kind": "approval", "approver_role": "approver"},
			{"name": "Notify", "kind": "auto", "on_approve": "email"},
		},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/workflows", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateWorkflow(c); err != nil {
		t.Fatalf("CreateWorkflow error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got domain.Workflow
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.WorkflowID == "" || len(got.Steps) != 2 {
		t.Fatalf("unexpected workflow: %+v", got)
	}
	if got.Steps[1].Kind != domain.StepAuto {
		t.Fatalf("auto step mangled: %+v", got.Steps[1])
	}
}

func TestCreateWorkflow_ZeroStepsIsLegal(t *testing.T) {
	e := newEchoWithValidator()
	repo := &workflowmock.Repo{
		CreateFn: func(ctx context.Context, w *domain.Workflow) error { return nil },
	}
	h := NewWorkflowHandler(uc.NewUsecase(repo))

	reqBody := map[string]any{"name": "Single Step"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/workflows", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateWorkflow(c); err != nil {
		t.Fatalf("CreateWorkflow error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateWorkflow_RejectsBadPayloads(t *testing.T) {
	e := newEchoWithValidator()
	h := NewWorkflowHandler(uc.NewUsecase(&workflowmock.Repo{}))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"steps": []map[string]any{}}},
		{"unknown step kind", map[string]any{"name": "W", "steps": []map[string]any{{"name": "S", "kind": "manual"}}}},
		{"unknown approver role", map[string]any{"name": "W", "steps": []map[string]any{{"name": "S", "approver_role": "ceo"}}}},
		{"step without name", map[string]any{"name": "W", "steps": []map[string]any{{"kind": "approval"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(stdhttp.MethodPost, "/workflows", mustJSON(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.CreateWorkflow(c); err != nil {
				t.Fatalf("CreateWorkflow error: %v", err)
			}
			if rec.Code != stdhttp.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422; body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetWorkflow_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &workflowmock.Repo{
		GetByWorkflowIDFn: func(ctx context.Context, id string) (*domain.Workflow, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewWorkflowHandler(uc.NewUsecase(repo))

	target := strings.Repeat("e", 32)
	req := httptest.NewRequest(stdhttp.MethodGet, "/workflows/"+target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/workflows/:workflow_id")
	c.SetParamNames("workflow_id")
	c.SetParamValues(target)

	if err := h.GetWorkflow(c); err != nil {
		t.Fatalf("GetWorkflow error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListWorkflows_PassesCategory(t *testing.T) {
	e := newEchoWithValidator()
	repo := &workflowmock.Repo{
		ListFn: func(ctx context.Context, orgID, category string) ([]domain.Workflow, error) {
			if category != "Finance" {
				t.Fatalf("category = %q, want Finance", category)
			}
			return []domain.Workflow{{Name: "W", Category: "Finance"}}, nil
		},
	}
	h := NewWorkflowHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/workflows?category=Finance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListWorkflows(c); err != nil {
		t.Fatalf("ListWorkflows error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
