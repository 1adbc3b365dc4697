package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// ActivityHandler consulta de la bitácora de actividad (protegido, solo admin).
type ActivityHandler struct {
	uc *audit.UseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *audit.UseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar bitácora de actividad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por usuario"
// @Param        action   query  string  false  "Filtrar por acción"
// @Param        entity   query  string  false  "Filtrar por entidad"
// @Param        from     query  string  false  "Desde (RFC3339)"
// @Param        to       query  string  false  "Hasta (RFC3339)"
// @Param        limit    query  int     false  "Límite"  default(100)
// @Success      200      {array}  dto.ActivityLogResponse
// @Router       /api/activity-logs [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	filter := repository.ActivityFilter{
		UserID: c.Query("user_id"),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  c.QueryInt("limit", 0),
	}
	var err error
	if filter.From, err = parseTimeQuery(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from debe ser RFC3339"})
	}
	if filter.To, err = parseTimeQuery(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to debe ser RFC3339"})
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByEntity godoc
// @Summary      Historial de actividad de una entidad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        entity  path  string  true  "Tipo de entidad (product, category, ...)"
// @Param        id      path  string  true  "ID de la entidad"
// @Success      200     {array}  dto.ActivityLogResponse
// @Router       /api/activity-logs/entity/{entity}/{id} [get]
func (h *ActivityHandler) ListByEntity(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntity(c.Params("entity"), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UserSummary godoc
// @Summary      Resumen de actividad de un usuario
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserActivitySummaryDTO
// @Router       /api/activity-logs/user/{id}/summary [get]
func (h *ActivityHandler) UserSummary(c *fiber.Ctx) error {
	out, err := h.uc.UserSummary(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
