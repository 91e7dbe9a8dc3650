package interfaces

import (
	"context"

	"bond_portal/internal/domain/entities"
)

// IAuditRepository is an append-only audit sink. Implementations must be safe
// for concurrent writers and keep events for one resource in append order.
type IAuditRepository interface {
	Append(ctx context.Context, e entities.AuditEvent) error
}

// IAuditReader is implemented by sinks that can be queried back.
type IAuditReader interface {
	ListByResourceID(ctx context.Context, resourceID string) ([]entities.AuditEvent, error)
}
