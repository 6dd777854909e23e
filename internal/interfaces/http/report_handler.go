package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/application/report"
	"github.com/ledgerly/ledgerly-api/internal/domain"
)

// ReportHandler expone el reporte de ventas en JSON, HTML y PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parsePeriod lee from/to (RFC 3339) del query string. Sin parámetros, el
// período es el mes en curso.
func parsePeriod(c *fiber.Ctx) (from, to time.Time, err error) {
	now := time.Now().UTC()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = now

	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

// Summary godoc
// @Summary      Totales agregados del período (facturas y recibos)
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "inicio del período, RFC 3339"
// @Param        to    query  string  false  "fin del período, RFC 3339"
// @Success      200   {object}  dto.ReportSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC 3339 y from <= to"})
	}
	out, _, err := h.uc.Summary(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HTML godoc
// @Summary      Documento HTML autocontenido del reporte
// @Description  Renderizado con el tema y las decoraciones de la plantilla
// @Description  elegida por la empresa.
// @Tags         reports
// @Produce      html
// @Param        from  query  string  false  "inicio del período, RFC 3339"
// @Param        to    query  string  false  "fin del período, RFC 3339"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/html [get]
func (h *ReportHandler) HTML(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC 3339 y from <= to"})
	}
	doc, err := h.uc.GenerateHTML(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// PDF godoc
// @Summary      Export PDF del reporte
// @Tags         reports
// @Produce      application/pdf
// @Param        from  query  string  false  "inicio del período, RFC 3339"
// @Param        to    query  string  false  "fin del período, RFC 3339"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC 3339 y from <= to"})
	}
	doc, err := h.uc.GeneratePDF(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)
	return c.Send(doc)
}
