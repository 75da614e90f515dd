package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/reporting"
)

// ReportHandler expone la descarga del informe mensual en PDF.
type ReportHandler struct {
	uc *reporting.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Descargar informe mensual en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  false  "Año (por defecto el actual)"
// @Param        month  query  int  false  "Mes 1-12 (por defecto el actual)"
// @Success      200    {file}    binary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.MonthlyReport(c.UserContext(), c.QueryInt("year", 0), c.QueryInt("month", 0))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
