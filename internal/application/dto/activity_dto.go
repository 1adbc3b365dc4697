package dto

import (
	"encoding/json"
	"time"
)

// ActivityLogResponse una entrada de la bitácora.
type ActivityLogResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Action      string          `json:"action"`
	Entity      string          `json:"entity"`
	EntityID    string          `json:"entity_id,omitempty"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	IPAddress   string          `json:"ip_address,omitempty"`
	UserAgent   string          `json:"user_agent,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// UserActivitySummaryDTO resumen de actividad de un usuario.
type UserActivitySummaryDTO struct {
	TotalActions   int64                 `json:"total_actions"`
	ByAction       map[string]int64      `json:"by_action"`
	ByEntity       map[string]int64      `json:"by_entity"`
	RecentActivity []ActivityLogResponse `json:"recent_activity"` // últimas 10
}
