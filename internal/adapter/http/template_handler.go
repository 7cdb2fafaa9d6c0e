package http

import (
	"net/http"

	domainTemplate "workflow-platform-backend/internal/domain/template"
	"workflow-platform-backend/internal/seed"

	"github.com/labstack/echo/v4"
)

type TemplateHandler struct {
	seeder    *seed.Seeder
	templates domainTemplate.Repository
}

func NewTemplateHandler(s *seed.Seeder, templates domainTemplate.Repository) *TemplateHandler {
	return &TemplateHandler{seeder: s, templates: templates}
}

func (h *TemplateHandler) SeedTemplates(c echo.Context) error {
	res, err := h.seeder.Run(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	items, err := h.templates.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
