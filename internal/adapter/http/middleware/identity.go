// Package middleware resolves who is calling and what they may do, once per request.
package middleware

import (
	"net/http"
	"strings"

	"bond_portal/internal/domain/entities"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserGroups = "X-User-Groups"
	HeaderUserID     = "X-User-ID"
	HeaderUserName   = "X-User-Name"

	ctxCapabilities = "capabilities"
	ctxActor        = "actor"
)

var errForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to perform this action", http.StatusForbidden)

// Identity reads the caller headers set by the upstream identity proxy and
// stores the resolved capabilities and actor on the context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups := strings.Split(c.GetHeader(HeaderUserGroups), ",")
		c.Set(ctxCapabilities, entities.ResolveCapabilities(groups))
		c.Set(ctxActor, entities.Actor{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			UserName: strings.TrimSpace(c.GetHeader(HeaderUserName)),
		})
		c.Next()
	}
}

// Require aborts with 403 unless the caller holds capability.
func Require(capability entities.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Capabilities(c).Has(capability) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func Capabilities(c *gin.Context) entities.CapabilitySet {
	if v, ok := c.Get(ctxCapabilities); ok {
		if caps, ok := v.(entities.CapabilitySet); ok {
			return caps
		}
	}
	return entities.CapabilitySet{}
}

func Actor(c *gin.Context) entities.Actor {
	if v, ok := c.Get(ctxActor); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}
