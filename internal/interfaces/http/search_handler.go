package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/application/usecase"
	"github.com/ledgerly/ledgerly-api/internal/domain/search"
)

// SearchHandler expone la búsqueda global de la empresa.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler de búsqueda.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda global (facturas, clientes, productos, recibos)
// @Tags         search
// @Produce      json
// @Param        q     query  string  false  "texto a buscar; vacío devuelve cero resultados"
// @Param        type  query  string  false  "all | invoices | customers | products | receipts"  default(all)
// @Success      200   {object}  dto.SearchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	kind := search.Kind(c.Query("type", string(search.KindAll)))
	if !kind.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser all, invoices, customers, products o receipts"})
	}

	out, err := h.uc.Search(c.Context(), GetCompanyID(c), c.Query("q"), kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
