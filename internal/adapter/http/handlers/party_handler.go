package handlers

import (
	"errors"
	"net/http"

	request "bond_portal/internal/adapter/http/dto/request"
	response "bond_portal/internal/adapter/http/dto/response"
	"bond_portal/internal/usecase"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
)

type PartyHandler struct {
	usecase usecase.IPartyUseCase
}

func NewPartyHandler(uc usecase.IPartyUseCase) *PartyHandler {
	return &PartyHandler{usecase: uc}
}

func (h *PartyHandler) CreateParty(c *gin.Context) {
	var payload request.CreatePartyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartyPayload.HTTPStatus, errInvalidPartyPayload.ToHTTPError())
		return
	}

	party, err := h.usecase.Create(c.Request.Context(), payload.ToParty())
	if err != nil {
		appErr := mapPartyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParty(party))
}

func (h *PartyHandler) GetParty(c *gin.Context) {
	party, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPartyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParty(party))
}

func mapPartyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParty):
		return errInvalidPartyPayload
	case errors.Is(err, usecase.ErrPartyNotFound):
		return pkg.NewDomainErrorSimple("PARTY_NOT_FOUND", "Party not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartyExists):
		return pkg.NewDomainErrorSimple("PARTY_ALREADY_EXISTS", "Party already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
