package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

const activityColumns = `id, user_id, action, entity, entity_id, description,
	metadata, ip_address, user_agent, created_at`

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La bitácora es append-only.
type ActivityLogRepo struct {
	q Querier
}

func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create registra una entrada en la bitácora.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.UserID, log.Action, log.Entity, log.EntityID, log.Description,
		log.Metadata, log.IPAddress, log.UserAgent, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List devuelve entradas según filtro, más recientes primero.
func (r *ActivityLogRepo) List(filter repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_logs WHERE 1=1`
	args := []any{}
	i := 1
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", i)
		args = append(args, filter.UserID)
		i++
	}
	if filter.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", i)
		args = append(args, filter.Action)
		i++
	}
	if filter.Entity != "" {
		query += fmt.Sprintf(" AND entity = $%d", i)
		args = append(args, filter.Entity)
		i++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", i)
		args = append(args, *filter.To)
		i++
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, filter.Limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return collectActivityLogs(rows)
}

// ListByEntity historial de una entidad concreta, más recientes primero.
func (r *ActivityLogRepo) ListByEntity(entityKind, entityID string) ([]*entity.ActivityLog, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_logs
		WHERE entity = $1 AND entity_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, entityKind, entityID)
	if err != nil {
		return nil, fmt.Errorf("list activity logs by entity: %w", err)
	}
	return collectActivityLogs(rows)
}

// ListByUser actividad de un usuario, más recientes primero.
func (r *ActivityLogRepo) ListByUser(userID string) ([]*entity.ActivityLog, error) {
	return r.List(repository.ActivityFilter{UserID: userID})
}

func collectActivityLogs(rows pgx.Rows) ([]*entity.ActivityLog, error) {
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Entity, &l.EntityID,
			&l.Description, &l.Metadata, &l.IPAddress, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
