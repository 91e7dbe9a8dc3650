package handlers

import (
	"net/http"
	"testing"
	"time"

	"bond_portal/internal/adapter/http/handlers/mocks"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuditHandler_GetOfferAudit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		events []entities.AuditEvent
		err    error
		want   int
	}{
		{
			name: "events",
			events: []entities.AuditEvent{{
				ID:        "a1",
				Action:    entities.NewAuditAction(entities.AuditPrefixBondAccept, entities.AuditOutcomeSuccess),
				Timestamp: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
			}},
			want: http.StatusOK,
		},
		{name: "unknown offer", err: usecase.ErrOfferNotFound, want: http.StatusNotFound},
		{name: "write-only sink", err: usecase.ErrAuditNotQueryable, want: http.StatusNotImplemented},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAuditQueryUseCase(ctrl)
			h := NewAuditHandler(uc)

			r := gin.New()
			r.GET("/v1/offers/:id/audit", h.GetOfferAudit)

			uc.EXPECT().ListByOffer(gomock.Any(), "O1").Return(tc.events, tc.err)

			if w := doRequest(r, http.MethodGet, "/v1/offers/O1/audit", "", ""); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
