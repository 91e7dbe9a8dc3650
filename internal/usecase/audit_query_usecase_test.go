package usecase

import (
	"context"
	"errors"
	"testing"

	"bond_portal/internal/domain/entities"
	mock_interfaces "bond_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditQueryUseCase_ListByOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("write-only sink", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuditQueryUseCase(nil, mock_interfaces.NewMockIOfferRepository(ctrl))

		if _, err := uc.ListByOffer(ctx, "O1"); !errors.Is(err, ErrAuditNotQueryable) {
			t.Fatalf("expected ErrAuditNotQueryable, got %v", err)
		}
	})

	t.Run("unknown offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		offers := mock_interfaces.NewMockIOfferRepository(ctrl)
		reader := mock_interfaces.NewMockIAuditReader(ctrl)
		uc := NewAuditQueryUseCase(reader, offers)

		offers.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Offer{}, nil)

		if _, err := uc.ListByOffer(ctx, "nope"); !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("lists events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		offers := mock_interfaces.NewMockIOfferRepository(ctrl)
		reader := mock_interfaces.NewMockIAuditReader(ctrl)
		uc := NewAuditQueryUseCase(reader, offers)

		offers.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.Offer{ID: "O1"}, nil)
		reader.EXPECT().ListByResourceID(gomock.Any(), "O1").Return([]entities.AuditEvent{{ID: "a1"}, {ID: "a2"}}, nil)

		events, err := uc.ListByOffer(ctx, " O1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
	})
}
