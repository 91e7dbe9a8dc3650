package handlers

import (
	"net/http"
	"testing"

	"bond_portal/internal/adapter/http/handlers/mocks"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPartyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPartyUseCase(ctrl)
	h := NewPartyHandler(uc)

	r := gin.New()
	r.POST("/v1/parties", h.CreateParty)
	r.GET("/v1/parties/:id", h.GetParty)

	if w := doRequest(r, http.MethodPost, "/v1/parties", `{"role":"insurer","name":"X","email":"x@y.example"}`, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Party{ID: "PH-1", Role: entities.PartyRolePolicyholder}, nil)
	if w := doRequest(r, http.MethodPost, "/v1/parties", `{"role":"policyholder","name":"Harbour","email":"h@b.example"}`, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Party{}, usecase.ErrPartyExists)
	if w := doRequest(r, http.MethodPost, "/v1/parties", `{"id":"PH-1","role":"policyholder","name":"Harbour","email":"h@b.example"}`, ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate id, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Party{}, usecase.ErrPartyNotFound)
	if w := doRequest(r, http.MethodGet, "/v1/parties/nope", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
