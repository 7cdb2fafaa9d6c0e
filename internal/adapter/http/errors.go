package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	domainApproval "workflow-platform-backend/internal/domain/approval"
	domainDocument "workflow-platform-backend/internal/domain/document"
	domainForm "workflow-platform-backend/internal/domain/form"
	domainSubmission "workflow-platform-backend/internal/domain/submission"
	domainTemplate "workflow-platform-backend/internal/domain/template"
	domainWorkflow "workflow-platform-backend/internal/domain/workflow"
)

// domainError maps domain errors to HTTP responses; anything unknown is a
// 500 with a generic message.
func domainError(c echo.Context, err error) error {
	var ve *domainSubmission.ValidationError
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve.Fields))
		keys := make([]string, 0, len(ve.Fields))
		for k := range ve.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			details = append(details, FieldError{Field: k, Message: ve.Fields[k]})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "submission data validation failed", Details: details})
	}

	switch {
	case errors.Is(err, domainForm.ErrNotFound),
		errors.Is(err, domainWorkflow.ErrNotFound),
		errors.Is(err, domainSubmission.ErrNotFound),
		errors.Is(err, domainApproval.ErrNotFound),
		errors.Is(err, domainDocument.ErrNotFound),
		errors.Is(err, domainTemplate.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainSubmission.ErrInvalidAction):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainSubmission.ErrInvalidTransition),
		errors.Is(err, domainSubmission.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainDocument.ErrRendererUnavailable),
		errors.Is(err, domainDocument.ErrStorageUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
