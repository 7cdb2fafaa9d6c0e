package http

import (
	"net/http"

	domainForm "workflow-platform-backend/internal/domain/form"
	"workflow-platform-backend/internal/usecase/form"

	"github.com/labstack/echo/v4"
)

type FormHandler struct{ uc *form.Usecase }

func NewFormHandler(uc *form.Usecase) *FormHandler { return &FormHandler{uc: uc} }

type formFieldReq struct {
	Key      string   `json:"key"      validate:"required"`
	Label    string   `json:"label"`
	Type     string   `json:"type"     validate:"omitempty,oneof=text number date select currency textarea file"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type createFormReq struct {
	Name        string         `json:"name"        validate:"required"`
	Description string         `json:"description"`
	Fields      []formFieldReq `json:"fields"      validate:"required,min=1,dive"`
	OrgID       string         `json:"org_id"      validate:"omitempty,hex32"`
}

func (h *FormHandler) CreateForm(c echo.Context) error {
	var req createFormReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	fields := make([]domainForm.Field, 0, len(req.Fields))
	for _, fl := range req.Fields {
		fields = append(fields, domainForm.Field{
			Key:      fl.Key,
			Label:    fl.Label,
			Type:     domainForm.FieldType(fl.Type),
			Required: fl.Required,
			Options:  fl.Options,
		})
	}
	f, err := h.uc.Define(c.Request().Context(), form.DefineInput{
		Name:        req.Name,
		Description: req.Description,
		Fields:      fields,
		OrgID:       req.OrgID,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FormHandler) GetForm(c echo.Context) error {
	f, err := h.uc.Get(c.Request().Context(), c.Param("form_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FormHandler) ListForms(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("org_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
