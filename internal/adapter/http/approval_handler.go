package http

import (
	"net/http"
	"time"

	domainApproval "workflow-platform-backend/internal/domain/approval"
	"workflow-platform-backend/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type actOnSubmissionReq struct {
	SubmissionID string `json:"submission_id" validate:"required,hex32"`
	// Not constrained here: the engine owns the action check so an unknown
	// value surfaces as its invalid-action error, not a generic 422.
	Action  string `json:"action"   validate:"required"`
	ActorID string `json:"actor_id" validate:"omitempty,hex32"`
	Comment string `json:"comment"`
}

func (h *ApprovalHandler) ActOnSubmission(c echo.Context) error {
	var req actOnSubmissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Act(c.Request().Context(), approval.ActInput{
		SubmissionID: req.SubmissionID,
		Action:       domainApproval.Action(req.Action),
		ActorID:      req.ActorID,
		Comment:      req.Comment,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approvalItem struct {
	ApprovalID string `json:"approval_id"`
	StepName   string `json:"step_name,omitempty"`
	ActorID    string `json:"actor_id,omitempty"`
	Action     string `json:"action"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (h *ApprovalHandler) ListSubmissionApprovals(c echo.Context) error {
	trail, err := h.uc.Trail(c.Request().Context(), c.Param("submission_id"))
	if err != nil {
		return domainError(c, err)
	}
	items := make([]approvalItem, 0, len(trail))
	for _, a := range trail {
		items = append(items, approvalItem{
			ApprovalID: a.ApprovalID,
			StepName:   a.StepName,
			ActorID:    a.ActorID,
			Action:     string(a.Action),
			Comment:    a.Comment,
			CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
