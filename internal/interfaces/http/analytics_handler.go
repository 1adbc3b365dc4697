package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack/internal/application/analytics"
)

// AnalyticsHandler maneja las peticiones HTTP de analítica (protegido, solo lectura).
type AnalyticsHandler struct {
	dashboard *analytics.DashboardUseCase
	reports   *analytics.ReportsUseCase
	restock   *analytics.RestockUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	dashboard *analytics.DashboardUseCase,
	reports *analytics.ReportsUseCase,
	restock *analytics.RestockUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, reports: reports, restock: restock}
}

// Dashboard godoc
// @Summary      Panel general del inventario
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetDashboard(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valoración del inventario por categoría
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationDTO
// @Router       /api/analytics/valuation [get]
func (h *AnalyticsHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.reports.Valuation(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ValuationPDF godoc
// @Summary      Reporte de valoración en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/analytics/valuation/pdf [get]
func (h *AnalyticsHandler) ValuationPDF(c *fiber.Ctx) error {
	out, err := h.reports.ValuationPDF(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=valuation-%d.pdf", time.Now().Unix()))
	return c.Send(out)
}

// LowStock godoc
// @Summary      Productos bajo su umbral de stock
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/analytics/low-stock [get]
func (h *AnalyticsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.reports.LowStockList()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ExpiryAlerts godoc
// @Summary      Productos vencidos o por vencer (30 días)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpiryAlertDTO
// @Router       /api/analytics/expiry-alerts [get]
func (h *AnalyticsHandler) ExpiryAlerts(c *fiber.Ctx) error {
	out, err := h.reports.ExpiryAlerts(time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RestockSuggestions godoc
// @Summary      Sugerencias de reposición
// @Description  Ventana de ventas de 90 días; urgencia por días de stock restante.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RestockSuggestionDTO
// @Router       /api/analytics/restock-suggestions [get]
func (h *AnalyticsHandler) RestockSuggestions(c *fiber.Ctx) error {
	out, err := h.restock.Suggestions(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
