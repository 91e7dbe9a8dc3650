package routes

import (
	"bond_portal/internal/adapter/http/handlers"
	"bond_portal/internal/adapter/http/middleware"
	"bond_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOffers  = "/offers"
	PathParties = "/parties"
)

func addOfferRoutes(rg *gin.RouterGroup, offers *handlers.OfferHandler, acceptance *handlers.AcceptanceHandler, audit *handlers.AuditHandler) {
	g := rg.Group(PathOffers)
	g.Use(middleware.Identity())
	{
		read := middleware.Require(entities.CapOffersRead)
		write := middleware.Require(entities.CapOffersWrite)
		del := middleware.Require(entities.CapOffersDelete)

		g.POST("", write, offers.CreateOffer)
		g.GET("", read, offers.ListOffers)
		g.GET("/:id", read, offers.GetOffer)
		g.PATCH("/:id", write, offers.UpdateOffer)
		g.DELETE("/:id", del, offers.DeleteOffer)
		g.POST("/:id/restore", del, offers.RestoreOffer)
		g.GET("/:id/history", read, offers.GetOfferHistory)
		g.GET("/:id/audit", read, audit.GetOfferAudit)
		g.POST("/:id/acceptance-link", middleware.Require(entities.CapOffersIssueLink), acceptance.IssueAcceptanceLink)
	}
}

func addPartyRoutes(rg *gin.RouterGroup, parties *handlers.PartyHandler) {
	g := rg.Group(PathParties)
	g.Use(middleware.Identity())
	{
		g.POST("", middleware.Require(entities.CapPartiesWrite), parties.CreateParty)
		g.GET("/:id", middleware.Require(entities.CapPartiesRead), parties.GetParty)
	}
}
