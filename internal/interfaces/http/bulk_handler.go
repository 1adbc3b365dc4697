package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/application/inventory"
)

// BulkHandler maneja las operaciones masivas sobre productos (protegido).
// Las operaciones no son atómicas: un fallo a mitad devuelve el conteo aplicado.
type BulkHandler struct {
	uc *inventory.BulkUseCase
}

// NewBulkHandler construye el handler.
func NewBulkHandler(uc *inventory.BulkUseCase) *BulkHandler {
	return &BulkHandler{uc: uc}
}

// AdjustPrice godoc
// @Summary      Ajuste masivo de precios
// @Description  percentage aplica price*(1+value/100); fixed suma value.
// @Description  Resultados negativos se fijan en 0.
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkPriceAdjustRequest  true  "product_ids, adjustment_type, value"
// @Success      200   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bulk/products/adjust-price [post]
func (h *BulkHandler) AdjustPrice(c *fiber.Ctx) error {
	var in dto.BulkPriceAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.PriceAdjust(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count, Message: fmt.Sprintf("precios ajustados en %d productos", count)})
}

// ChangeCategory godoc
// @Summary      Cambio masivo de categoría
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCategoryChangeRequest  true  "product_ids, category_id"
// @Success      200   {object}  dto.CountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bulk/products/change-category [post]
func (h *BulkHandler) ChangeCategory(c *fiber.Ctx) error {
	var in dto.BulkCategoryChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.CategoryChange(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count, Message: fmt.Sprintf("%d productos movidos de categoría", count)})
}

// Update godoc
// @Summary      Actualización masiva de campos
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "product_ids, updates"
// @Success      200   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bulk/products/update [post]
func (h *BulkHandler) Update(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.Update(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count, Message: fmt.Sprintf("%d productos actualizados", count)})
}

// Delete godoc
// @Summary      Borrado masivo de productos
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "product_ids"
// @Success      200   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bulk/products/delete [post]
func (h *BulkHandler) Delete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.Delete(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count, Message: fmt.Sprintf("%d productos eliminados", count)})
}

// ExportCSV godoc
// @Summary      Exportar productos a CSV
// @Description  product_ids vacío exporta todo el inventario.
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.BulkExportRequest  true  "product_ids (opcional)"
// @Success      200   {file}  binary
// @Router       /api/bulk/products/export-csv [post]
func (h *BulkHandler) ExportCSV(c *fiber.Ctx) error {
	var in dto.BulkExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ExportCSV(c.Context(), GetUserID(c), in.ProductIDs)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=products-export-%d.csv", time.Now().UnixMilli()))
	return c.Send(out)
}
