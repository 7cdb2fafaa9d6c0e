package http

import (
	"net/http"

	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
	"workflow-platform-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type workflowStepReq struct {
	Name         string `json:"name"          validate:"required"`
	Kind         string `json:"kind"          validate:"omitempty,oneof=approval auto"`
	ApproverRole string `json:"approver_role" validate:"omitempty,oneof=approver admin"`
	OnApprove    string `json:"on_approve"`
}

type createWorkflowReq struct {
	Name        string            `json:"name"        validate:"required"`
	Description string            `json:"description"`
	FormID      string            `json:"form_id"     validate:"omitempty,hex32"`
	Steps       []workflowStepReq `json:"steps"       validate:"dive"`
	OrgID       string            `json:"org_id"      validate:"omitempty,hex32"`
	Category    string            `json:"category"`
}

func (h *WorkflowHandler) CreateWorkflow(c echo.Context) error {
	var req createWorkflowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	steps := make([]domainWorkflow.Step, 0, len(req.Steps))
	for _, st := range req.Steps {
		steps = append(steps, domainWorkflow.Step{
			Name:         st.Name,
			Kind:         domainWorkflow.StepKind(st.Kind),
			ApproverRole: domainWorkflow.ApproverRole(st.ApproverRole),
			OnApprove:    st.OnApprove,
		})
	}
	w, err := h.uc.Define(c.Request().Context(), workflow.DefineInput{
		Name:        req.Name,
		Description: req.Description,
		FormID:      req.FormID,
		Steps:       steps,
		OrgID:       req.OrgID,
		Category:    req.Category,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WorkflowHandler) GetWorkflow(c echo.Context) error {
	w, err := h.uc.Get(c.Request().Context(), c.Param("workflow_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WorkflowHandler) ListWorkflows(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("org_id"), c.QueryParam("category"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
