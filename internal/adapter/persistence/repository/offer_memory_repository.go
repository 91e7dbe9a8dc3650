package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)

// OfferMemoryRepository is the mock-mode record store. Reads return deep copies
// so callers never share history slices with the store.
type OfferMemoryRepository struct {
	mu     sync.Mutex
	offers map[string]entities.Offer
}

var _ interfaces.IOfferRepository = (*OfferMemoryRepository)(nil)

func NewOfferMemoryRepository(seed ...entities.Offer) *OfferMemoryRepository {
	r := &OfferMemoryRepository{offers: map[string]entities.Offer{}}
	for _, o := range seed {
		r.offers[o.ID] = cloneOffer(o)
	}
	return r
}

func (r *OfferMemoryRepository) Create(_ context.Context, o entities.Offer) (entities.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[o.ID]; ok {
		return entities.Offer{}, interfaces.ErrOfferExists
	}
	r.offers[o.ID] = cloneOffer(o)
	return cloneOffer(o), nil
}

func (r *OfferMemoryRepository) GetByID(_ context.Context, id string) (entities.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return entities.Offer{}, nil
	}
	return cloneOffer(o), nil
}

func (r *OfferMemoryRepository) List(_ context.Context, includeDeleted bool) ([]entities.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		if !includeDeleted && o.Lifecycle == entities.LifecycleSoftDeleted {
			continue
		}
		out = append(out, cloneOffer(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *OfferMemoryRepository) Update(_ context.Context, o entities.Offer, entry entities.EditHistoryEntry) (entities.Offer, error) {
	return r.mutate(o.ID, func(cur entities.Offer) (entities.Offer, bool) {
		if !cur.IsOpen() {
			return cur, false
		}
		cur.BondAmount = o.BondAmount
		cur.Premium = o.Premium
		cur.EffectiveDate = o.EffectiveDate
		cur.ExpiryDate = o.ExpiryDate
		cur.Terms = o.Terms
		cur.UpdatedAt = entry.Timestamp
		return cur, true
	}, entry)
}

func (r *OfferMemoryRepository) SetLifecycle(_ context.Context, id string, from, to entities.Lifecycle, entry entities.EditHistoryEntry) (entities.Offer, error) {
	return r.mutate(id, func(cur entities.Offer) (entities.Offer, bool) {
		if cur.Lifecycle != from {
			return cur, false
		}
		cur.Lifecycle = to
		cur.UpdatedAt = entry.Timestamp
		return cur, true
	}, entry)
}

func (r *OfferMemoryRepository) Finalize(_ context.Context, id string, status entities.OfferStatus, at time.Time, entry entities.EditHistoryEntry) (entities.Offer, error) {
	return r.mutate(id, func(cur entities.Offer) (entities.Offer, bool) {
		if !cur.IsOpen() || !status.IsFinal() {
			return cur, false
		}
		cur.Status = status
		stamp := at
		if status == entities.OfferStatusAccepted {
			cur.AcceptedAt = &stamp
		} else {
			cur.RejectedAt = &stamp
		}
		cur.UpdatedAt = at
		return cur, true
	}, entry)
}

// mutate applies fn under the lock; fn reports whether its condition held.
func (r *OfferMemoryRepository) mutate(id string, fn func(entities.Offer) (entities.Offer, bool), entry entities.EditHistoryEntry) (entities.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.offers[id]
	if !ok {
		return entities.Offer{}, nil
	}
	next, applied := fn(cloneOffer(cur))
	if !applied {
		return entities.Offer{}, nil
	}
	next.History = append(next.History, entry)
	r.offers[id] = next
	return cloneOffer(next), nil
}

func cloneOffer(o entities.Offer) entities.Offer {
	if o.History != nil {
		h := make([]entities.EditHistoryEntry, len(o.History))
		copy(h, o.History)
		o.History = h
	}
	if o.AcceptedAt != nil {
		t := *o.AcceptedAt
		o.AcceptedAt = &t
	}
	if o.RejectedAt != nil {
		t := *o.RejectedAt
		o.RejectedAt = &t
	}
	return o
}
