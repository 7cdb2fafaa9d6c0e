package http

import (
	"net/http"

	"workflow-platform-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct{ uc *submission.Usecase }

func NewSubmissionHandler(uc *submission.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

type createSubmissionReq struct {
	FormID      string         `json:"form_id"      validate:"required,hex32"`
	WorkflowID  string         `json:"workflow_id"  validate:"omitempty,hex32"`
	Data        map[string]any `json:"data"`
	RequesterID string         `json:"requester_id" validate:"omitempty,hex32"`
}

func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	var req createSubmissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Submit(c.Request().Context(), submission.SubmitInput{
		FormID:      req.FormID,
		WorkflowID:  req.WorkflowID,
		Data:        req.Data,
		RequesterID: req.RequesterID,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("submission_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), submission.ListInput{
		Status:     c.QueryParam("status"),
		WorkflowID: c.QueryParam("workflow_id"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

type archiveSubmissionReq struct {
	ArchiveDocuments bool `json:"archive_documents"`
}

func (h *SubmissionHandler) ArchiveSubmission(c echo.Context) error {
	var req archiveSubmissionReq
	// empty body is fine; archive_documents defaults to false
	_ = c.Bind(&req)

	dto, err := h.uc.Archive(c.Request().Context(), submission.ArchiveInput{
		SubmissionID:     c.Param("submission_id"),
		ArchiveDocuments: req.ArchiveDocuments,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
