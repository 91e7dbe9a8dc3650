package handlers

import (
	"errors"
	"net/http"

	response "bond_portal/internal/adapter/http/dto/response"
	"bond_portal/internal/usecase"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	usecase usecase.IAuditQueryUseCase
}

func NewAuditHandler(uc usecase.IAuditQueryUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// GetOfferAudit godoc
// @Summary      List the audit trail recorded for an offer
// @Tags         offers
// @Produce      json
// @Param        id  path  string  true  "Offer ID"
// @Success      200  {array}   response.AuditEventResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      501  {object}  pkg.HTTPError
// @Router       /offers/{id}/audit [get]
func (h *AuditHandler) GetOfferAudit(c *gin.Context) {
	events, err := h.usecase.ListByOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		var appErr *pkg.AppError
		if errors.Is(err, usecase.ErrAuditNotQueryable) {
			appErr = pkg.NewDomainErrorSimple("AUDIT_NOT_QUERYABLE", "Audit trail is not available from this service", http.StatusNotImplemented)
		} else {
			appErr = mapOfferError(err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditEvents(events))
}
