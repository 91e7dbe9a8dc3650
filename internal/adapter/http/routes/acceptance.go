package routes

import (
	"bond_portal/internal/adapter/http/handlers"
	"bond_portal/internal/adapter/http/middleware"
	"bond_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathBonds = "/bonds"
)

// addAcceptanceRoutes registers the public endpoints reached from the
// acceptance email. They carry no identity headers; the token is the credential.
func addAcceptanceRoutes(rg *gin.RouterGroup, h *handlers.AcceptanceHandler, limiter interfaces.IRateLimiter, logger *zap.Logger) {
	bonds := rg.Group(PathBonds)
	bonds.Use(middleware.RateLimit(limiter, logger))
	{
		bonds.POST("/:id/validate-otp", h.ValidateOTP)
		bonds.POST("/:id/accept", h.Accept)
		bonds.POST("/:id/reject", h.Reject)
	}
}
