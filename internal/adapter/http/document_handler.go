package http

import (
	"net/http"
	"strconv"

	"workflow-platform-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct{ uc *document.Usecase }

func NewDocumentHandler(uc *document.Usecase) *DocumentHandler { return &DocumentHandler{uc: uc} }

type generateDocumentReq struct {
	Title string `json:"title"`
}

func (h *DocumentHandler) GenerateDocument(c echo.Context) error {
	var req generateDocumentReq
	// body is optional; a missing title falls back to a default
	_ = c.Bind(&req)

	d, err := h.uc.Generate(c.Request().Context(), document.GenerateInput{
		SubmissionID: c.Param("submission_id"),
		Title:        req.Title,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DocumentHandler) ArchiveDocument(c echo.Context) error {
	d, err := h.uc.Archive(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"document_id": d.DocumentID, "archived": d.Archived})
}

func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	in := document.ListInput{SubmissionID: c.QueryParam("submission_id")}
	if raw := c.QueryParam("archived"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid archived query param"})
		}
		in.Archived = &b
	}
	items, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
