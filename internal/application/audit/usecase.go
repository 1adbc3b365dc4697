package audit

import (
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

const recentActivityLimit = 10

// UseCase consultas de lectura sobre la bitácora.
type UseCase struct {
	repo repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ActivityLogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve entradas según filtro, más recientes primero.
func (uc *UseCase) List(filter repository.ActivityFilter) ([]dto.ActivityLogResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	logs, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toResponses(logs), nil
}

// ListByEntity historial de una entidad concreta.
func (uc *UseCase) ListByEntity(entityKind, entityID string) ([]dto.ActivityLogResponse, error) {
	logs, err := uc.repo.ListByEntity(entityKind, entityID)
	if err != nil {
		return nil, err
	}
	return toResponses(logs), nil
}

// UserSummary resumen de actividad de un usuario: totales por acción y
// entidad más las últimas entradas.
func (uc *UseCase) UserSummary(userID string) (*dto.UserActivitySummaryDTO, error) {
	logs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := &dto.UserActivitySummaryDTO{
		TotalActions: int64(len(logs)),
		ByAction:     make(map[string]int64),
		ByEntity:     make(map[string]int64),
	}
	for _, l := range logs {
		summary.ByAction[l.Action]++
		summary.ByEntity[l.Entity]++
	}
	recent := logs
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	summary.RecentActivity = toResponses(recent)
	return summary, nil
}

func toResponses(logs []*entity.ActivityLog) []dto.ActivityLogResponse {
	out := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ActivityLogResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			Action:      l.Action,
			Entity:      l.Entity,
			EntityID:    l.EntityID,
			Description: l.Description,
			Metadata:    l.Metadata,
			IPAddress:   l.IPAddress,
			UserAgent:   l.UserAgent,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}
