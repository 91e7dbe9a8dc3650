package handlers

import (
	"context"
	"errors"
	"net/http"

	request "bond_portal/internal/adapter/http/dto/request"
	response "bond_portal/internal/adapter/http/dto/response"
	"bond_portal/internal/adapter/http/middleware"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidToken   = "Invalid or expired token"
	msgInvalidCode    = "Invalid code. Please try again."
	msgValidateFailed = "Failed to validate code. Please try again."
	msgAcceptFailed   = "Failed to accept bond. Please try again."
	msgRejectFailed   = "Failed to reject bond. Please try again."
	msgLinkFailed     = "Failed to issue acceptance link. Please try again."
)

// AcceptanceHandler serves the public endpoints reached from an acceptance
// email and the broker endpoint that sends that email.
type AcceptanceHandler struct {
	usecase usecase.IAcceptanceUseCase
}

func NewAcceptanceHandler(uc usecase.IAcceptanceUseCase) *AcceptanceHandler {
	return &AcceptanceHandler{usecase: uc}
}

// ValidateOTP godoc
// @Summary      Validate the one-time code of an acceptance link
// @Tags         acceptance
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Offer ID"
// @Param        body  body  request.AcceptanceRequest  true  "Token and code"
// @Success      200  {object}  response.CertificateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bonds/{id}/validate-otp [post]
func (h *AcceptanceHandler) ValidateOTP(c *gin.Context) {
	payload := bindAcceptance(c)

	view, err := h.usecase.ValidateOTP(c.Request.Context(), c.Param("id"), payload.ResolveToken(), payload.ResolveOTP())
	if err != nil {
		appErr := mapAcceptanceError(err, msgValidateFailed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCertificate(view))
}

// Accept godoc
// @Summary      Accept a bond after the code was validated
// @Tags         acceptance
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Offer ID"
// @Param        body  body  request.AcceptanceRequest  true  "Token"
// @Success      200  {object}  response.FinalizationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bonds/{id}/accept [post]
func (h *AcceptanceHandler) Accept(c *gin.Context) {
	h.finalize(c, h.usecase.Accept, msgAcceptFailed)
}

// Reject godoc
// @Summary      Reject a bond after the code was validated
// @Tags         acceptance
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Offer ID"
// @Param        body  body  request.AcceptanceRequest  true  "Token"
// @Success      200  {object}  response.FinalizationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bonds/{id}/reject [post]
func (h *AcceptanceHandler) Reject(c *gin.Context) {
	h.finalize(c, h.usecase.Reject, msgRejectFailed)
}

func (h *AcceptanceHandler) finalize(
	c *gin.Context,
	finalizer func(ctx context.Context, offerID, token string) (entities.Finalization, error),
	failureMessage string,
) {
	payload := bindAcceptance(c)

	fin, err := finalizer(c.Request.Context(), c.Param("id"), payload.ResolveToken())
	if err != nil {
		appErr := mapAcceptanceError(err, failureMessage)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinalization(fin))
}

// IssueAcceptanceLink godoc
// @Summary      Send an acceptance link and code to the policyholder
// @Tags         offers
// @Produce      json
// @Param        id  path  string  true  "Offer ID"
// @Success      201  {object}  response.AcceptanceLinkResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /offers/{id}/acceptance-link [post]
func (h *AcceptanceHandler) IssueAcceptanceLink(c *gin.Context) {
	link, err := h.usecase.IssueAcceptanceLink(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		appErr := mapAcceptanceError(err, msgLinkFailed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAcceptanceLink(link))
}

// bindAcceptance never fails the request: an unreadable body is treated as an
// empty one so the use case still audits the attempt.
func bindAcceptance(c *gin.Context) request.AcceptanceRequest {
	var payload request.AcceptanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return request.AcceptanceRequest{}
	}
	return payload
}

func mapAcceptanceError(err error, failureMessage string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", msgInvalidToken, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOTP):
		return pkg.NewDomainErrorSimple("INVALID_OTP", msgInvalidCode, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOTPNotVerified):
		return pkg.NewDomainErrorSimple("OTP_NOT_VERIFIED", "Please verify your code before continuing.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferAlreadyFinalized):
		return pkg.NewDomainErrorSimple("BOND_ALREADY_FINALIZED", "This bond has already been accepted or rejected.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotOpen):
		return pkg.NewDomainErrorSimple("OFFER_NOT_OPEN", "Offer is no longer open for acceptance", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartyNotFound):
		return pkg.NewDomainErrorSimple("PARTY_NOT_FOUND", "Policyholder not found", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", failureMessage, err, http.StatusInternalServerError)
	}
}
