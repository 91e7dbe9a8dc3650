package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultAuditTimeout = 2 * time.Second

// AuditLogger appends audit events on a best-effort basis: a failing sink is
// logged and otherwise ignored so it never changes the outcome of the caller.
type AuditLogger struct {
	repo    interfaces.IAuditRepository
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewAuditLogger(repo interfaces.IAuditRepository, logger *zap.Logger) *AuditLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogger{repo: repo, logger: logger, timeout: defaultAuditTimeout, now: time.Now}
}

func (a *AuditLogger) WithClock(now func() time.Time) *AuditLogger {
	a.now = now
	return a
}

// Record stamps and appends one event. It detaches from the caller's
// cancellation so an abandoned request still leaves its trail.
func (a *AuditLogger) Record(ctx context.Context, action entities.AuditAction, resourceType, resourceID string, details map[string]any) {
	e := entities.AuditEvent{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		Timestamp:    a.now().UTC(),
	}
	if a.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()
	if err := a.repo.Append(ctx, e); err != nil {
		a.logger.Error("audit append failed",
			zap.String("action", string(action)),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
	}
}

// Begin records <prefix>_ATTEMPT and returns the trail that closes it.
func (a *AuditLogger) Begin(ctx context.Context, prefix, resourceType, resourceID string, details map[string]any) *AuditTrail {
	t := &AuditTrail{
		audit:        a,
		ctx:          ctx,
		prefix:       prefix,
		resourceType: resourceType,
		resourceID:   resourceID,
		base:         details,
	}
	a.Record(ctx, entities.NewAuditAction(prefix, entities.AuditOutcomeAttempt), resourceType, resourceID, t.merge(nil))
	return t
}

// AuditTrail emits exactly one terminal event. The first of Success, Failed or
// Error wins; Close records an ERROR if none was emitted.
type AuditTrail struct {
	audit        *AuditLogger
	ctx          context.Context
	prefix       string
	resourceType string
	resourceID   string
	base         map[string]any

	once sync.Once
}

func (t *AuditTrail) Success(details map[string]any) {
	t.finish(entities.AuditOutcomeSuccess, details)
}

func (t *AuditTrail) Failed(reason string, details map[string]any) {
	t.finish(entities.AuditOutcomeFailed, withReason(details, reason))
}

func (t *AuditTrail) Error(reason string, err error, details map[string]any) {
	d := withReason(details, reason)
	if err != nil {
		d["error"] = err.Error()
	}
	t.finish(entities.AuditOutcomeError, d)
}

// Close is meant to be deferred. A panic in the caller is recorded and re-raised.
func (t *AuditTrail) Close() {
	if r := recover(); r != nil {
		t.Error("unexpected termination", fmt.Errorf("panic: %v", r), nil)
		panic(r)
	}
	t.Error("unexpected termination", nil, nil)
}

func (t *AuditTrail) finish(outcome string, details map[string]any) {
	t.once.Do(func() {
		t.audit.Record(t.ctx, entities.NewAuditAction(t.prefix, outcome), t.resourceType, t.resourceID, t.merge(details))
	})
}

func (t *AuditTrail) merge(details map[string]any) map[string]any {
	out := make(map[string]any, len(t.base)+len(details))
	for k, v := range t.base {
		out[k] = v
	}
	for k, v := range details {
		out[k] = v
	}
	return out
}

func withReason(details map[string]any, reason string) map[string]any {
	out := make(map[string]any, len(details)+1)
	for k, v := range details {
		out[k] = v
	}
	out["reason"] = reason
	return out
}
