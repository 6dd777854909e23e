package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/application/usecase"
)

// TemplateHandler expone el catálogo de plantillas y su previsualización.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler de plantillas.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo con parámetros de render resueltos
// @Tags         templates
// @Produce      json
// @Success      200  {array}  dto.TemplatePreviewResponse
// @Security     BearerAuth
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Resolver variante + tema + decoraciones de una plantilla
// @Description  Un id fuera del catálogo no es 404: los resolvers degradan a
// @Description  defaults y la respuesta siempre es renderizable.
// @Tags         templates
// @Produce      json
// @Param        id   path  string  true  "id de plantilla (ej. neoBrutalist)"
// @Success      200  {object}  dto.TemplatePreviewResponse
// @Security     BearerAuth
// @Router       /api/templates/{id}/preview [get]
func (h *TemplateHandler) Preview(c *fiber.Ctx) error {
	out, err := h.uc.Preview(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
