package repository

import (
	"context"
	"sync"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)

// AuditMemoryRepository appends audit events to an in-process slice.
type AuditMemoryRepository struct {
	mu     sync.Mutex
	events []entities.AuditEvent
}

var (
	_ interfaces.IAuditRepository = (*AuditMemoryRepository)(nil)
	_ interfaces.IAuditReader     = (*AuditMemoryRepository)(nil)
)

func NewAuditMemoryRepository() *AuditMemoryRepository {
	return &AuditMemoryRepository{}
}

func (r *AuditMemoryRepository) Append(_ context.Context, e entities.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *AuditMemoryRepository) ListByResourceID(_ context.Context, resourceID string) ([]entities.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.AuditEvent
	for _, e := range r.events {
		if e.ResourceID == resourceID {
			out = append(out, e)
		}
	}
	return out, nil
}

// All returns every recorded event in append order.
func (r *AuditMemoryRepository) All() []entities.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}
