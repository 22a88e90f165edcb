// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-mohitbeniwal/eventdesk/controller"
	"github.com/dev-mohitbeniwal/eventdesk/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	verifier middleware.TokenVerifier,
	limiter middleware.RateLimitStore,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(limiter, rateLimitRequests, rateLimitDuration))

	controllers.User.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.Auth(verifier))

	controllers.Event.RegisterRoutes(authed)
	controllers.Form.RegisterRoutes(authed)
	controllers.Participant.RegisterRoutes(authed)
	controllers.Invitation.RegisterRoutes(authed)
	controllers.Staff.RegisterRoutes(authed)
	controllers.User.RegisterRoutes(authed)

	return router
}
