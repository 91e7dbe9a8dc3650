package usecase

import (
	"context"
	"errors"
	"testing"

	"bond_portal/internal/domain/entities"
	mock_interfaces "bond_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartyUseCase_Create(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		uc := NewPartyUseCase(nil)
		for _, p := range []entities.Party{
			{Role: "insurer", Name: "X", Email: "x@y.example"},
			{Role: entities.PartyRolePolicyholder, Name: " ", Email: "x@y.example"},
			{Role: entities.PartyRoleBeneficiary, Name: "X", Email: "not-an-email"},
		} {
			if _, err := uc.Create(context.Background(), p); !errors.Is(err, ErrInvalidParty) {
				t.Fatalf("expected ErrInvalidParty for %+v, got %v", p, err)
			}
		}
	})

	t.Run("assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Party) (entities.Party, error) {
			if p.ID == "" || p.Name != "Harbour Build" {
				t.Fatalf("unexpected party: %+v", p)
			}
			return p, nil
		})

		if _, err := uc.Create(context.Background(), entities.Party{Role: entities.PartyRolePolicyholder, Name: " Harbour Build ", Email: "a@b.example"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPartyUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartyRepository(ctrl)
	uc := NewPartyUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "PH-9").Return(entities.Party{}, nil)

	if _, err := uc.GetByID(context.Background(), "PH-9"); !errors.Is(err, ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
}
