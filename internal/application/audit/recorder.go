// Package audit implementa la bitácora de actividad: cada operación lógica
// (alta, edición, borrado, login, export, acción masiva) deja una entrada
// append-only con actor, entidad y descripción.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
	"github.com/tu-usuario/inventrack/pkg/logger"
)

// Entry entrada de bitácora pendiente de persistir. Metadata se serializa a JSON.
type Entry struct {
	UserID      string
	Action      string // entity.Action*
	Entity      string // entity.Entity*
	EntityID    string
	Description string
	Metadata    any
	IPAddress   string
	UserAgent   string
}

// Recorder persiste entradas de bitácora. Un fallo al registrar nunca debe
// tumbar la operación de negocio que lo originó: se loguea y se sigue.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste la entrada. Best-effort: el error se loguea, no se propaga.
func (r *Recorder) Record(_ context.Context, e Entry) {
	var meta json.RawMessage
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			meta = b
		}
	}
	logEntry := &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      e.UserID,
		Action:      e.Action,
		Entity:      e.Entity,
		EntityID:    e.EntityID,
		Description: e.Description,
		Metadata:    meta,
		IPAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		CreatedAt:   time.Now(),
	}
	if err := r.repo.Create(logEntry); err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("action", e.Action).
			Str("entity", e.Entity).
			Msg("bitácora: no se pudo registrar la entrada")
	}
}
