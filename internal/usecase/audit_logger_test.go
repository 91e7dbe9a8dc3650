package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bond_portal/internal/adapter/persistence/repository"
	"bond_portal/internal/domain/entities"
	mock_interfaces "bond_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditTrail_OneTerminalEvent(t *testing.T) {
	sink := repository.NewAuditMemoryRepository()
	a := NewAuditLogger(sink, nil)

	func() {
		trail := a.Begin(context.Background(), entities.AuditPrefixBondAccept, entities.AuditResourceBond, "O1", map[string]any{"hasToken": true})
		defer trail.Close()
		trail.Failed("otp not verified", nil)
		trail.Success(nil)
		trail.Error("late", errors.New("ignored"), nil)
	}()

	events := sink.All()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Action != "BOND_ACCEPT_ATTEMPT" || events[1].Action != "BOND_ACCEPT_FAILED" {
		t.Fatalf("unexpected actions: %s, %s", events[0].Action, events[1].Action)
	}
	if events[1].Details["reason"] != "otp not verified" || events[1].Details["hasToken"] != true {
		t.Fatalf("unexpected details: %+v", events[1].Details)
	}
	if events[0].ID == "" || events[0].ID == events[1].ID || events[0].Timestamp.IsZero() {
		t.Fatalf("expected stamped events: %+v", events)
	}
}

func TestAuditTrail_CloseWithoutOutcomeRecordsError(t *testing.T) {
	sink := repository.NewAuditMemoryRepository()
	a := NewAuditLogger(sink, nil)

	trail := a.Begin(context.Background(), entities.AuditPrefixBondReject, entities.AuditResourceBond, "O1", nil)
	trail.Close()
	trail.Close()

	events := sink.All()
	if len(events) != 2 || events[1].Action != "BOND_REJECT_ERROR" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if events[1].Details["reason"] != "unexpected termination" {
		t.Fatalf("unexpected reason: %+v", events[1].Details)
	}
}

func TestAuditTrail_PanicIsRecordedAndRethrown(t *testing.T) {
	sink := repository.NewAuditMemoryRepository()
	a := NewAuditLogger(sink, nil)

	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected panic to propagate, got %v", r)
		}
		events := sink.All()
		if len(events) != 2 || events[1].Action != "OTP_VALIDATION_ERROR" {
			t.Fatalf("unexpected events: %+v", events)
		}
		if events[1].Details["error"] != "panic: boom" {
			t.Fatalf("unexpected details: %+v", events[1].Details)
		}
	}()

	trail := a.Begin(context.Background(), entities.AuditPrefixOTPValidation, entities.AuditResourceBond, "O1", nil)
	defer trail.Close()
	panic("boom")
}

func TestAuditLogger_SinkFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIAuditRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

	core, logs := observer.New(zap.ErrorLevel)
	a := NewAuditLogger(repo, zap.New(core))
	a.Record(context.Background(), "OTP_VALIDATION_ATTEMPT", entities.AuditResourceBond, "O1", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected one error log, got %d", logs.Len())
	}
	if logs.All()[0].ContextMap()["resource_id"] != "O1" {
		t.Fatalf("unexpected log fields: %+v", logs.All()[0].ContextMap())
	}
}

func TestAuditLogger_SurvivesCanceledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIAuditRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.AuditEvent) error {
		if ctx.Err() != nil {
			t.Fatalf("audit context should not inherit cancellation")
		}
		if _, ok := ctx.Deadline(); !ok {
			t.Fatalf("audit context should carry a deadline")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fixed := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	NewAuditLogger(repo, nil).WithClock(func() time.Time { return fixed }).
		Record(ctx, "BOND_ACCEPT_ATTEMPT", entities.AuditResourceBond, "O1", nil)
}
