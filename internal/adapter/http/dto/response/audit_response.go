package response

import (
	"time"

	"bond_portal/internal/domain/entities"
)

type AuditEventResponse struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceId"`
	Details      map[string]any `json:"details,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

func FromAuditEvents(events []entities.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, AuditEventResponse{
			ID:           e.ID,
			Action:       string(e.Action),
			ResourceType: e.ResourceType,
			ResourceID:   e.ResourceID,
			Details:      e.Details,
			Timestamp:    e.Timestamp,
		})
	}
	return out
}
