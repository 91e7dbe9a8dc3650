package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "bond_portal/internal/adapter/http/dto/request"
	response "bond_portal/internal/adapter/http/dto/response"
	"bond_portal/internal/adapter/http/middleware"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
	errInvalidPartyPayload = pkg.NewDomainErrorSimple("INVALID_PARTY_INPUT", "Invalid party payload", http.StatusBadRequest)
)

// OfferHandler handles the broker-facing offer records.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), middleware.Actor(c))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// ListOffers hides soft-deleted offers unless include_deleted=true and the
// caller may delete offers.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	includeDeleted, _ := strconv.ParseBool(c.Query("include_deleted"))
	if includeDeleted && !middleware.Capabilities(c).Has(entities.CapOffersDelete) {
		includeDeleted = false
	}

	offers, err := h.usecase.List(c.Request.Context(), includeDeleted)
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOffers(offers))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	h.respondOffer(c, http.StatusOK, func(ctx context.Context, id string) (entities.Offer, error) {
		return h.usecase.GetByID(ctx, id)
	})
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var payload request.UpdateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	h.respondOffer(c, http.StatusOK, func(ctx context.Context, id string) (entities.Offer, error) {
		return h.usecase.Update(ctx, id, payload.ToPatch(), middleware.Actor(c))
	})
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	h.respondOffer(c, http.StatusOK, func(ctx context.Context, id string) (entities.Offer, error) {
		return h.usecase.SoftDelete(ctx, id, middleware.Actor(c))
	})
}

func (h *OfferHandler) RestoreOffer(c *gin.Context) {
	h.respondOffer(c, http.StatusOK, func(ctx context.Context, id string) (entities.Offer, error) {
		return h.usecase.Restore(ctx, id, middleware.Actor(c))
	})
}

func (h *OfferHandler) GetOfferHistory(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistory(history))
}

func (h *OfferHandler) respondOffer(c *gin.Context, status int, do func(ctx context.Context, id string) (entities.Offer, error)) {
	offer, err := do(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromOffer(offer))
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOffer):
		return errInvalidOfferPayload
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartyNotFound):
		return pkg.NewDomainErrorSimple("PARTY_NOT_FOUND", "Party not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOfferNotEditable):
		return pkg.NewDomainErrorSimple("OFFER_NOT_EDITABLE", "Only pending offers can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferAlreadyDeleted):
		return pkg.NewDomainErrorSimple("OFFER_ALREADY_DELETED", "Offer is already deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotDeleted):
		return pkg.NewDomainErrorSimple("OFFER_NOT_DELETED", "Offer is not deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferExists):
		return pkg.NewDomainErrorSimple("OFFER_ALREADY_EXISTS", "Offer already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
