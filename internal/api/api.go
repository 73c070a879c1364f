package api

import (
	"net/http"

	"push-server/internal/auth"
	campaignHandler "push-server/internal/campaign/handler"
	"push-server/internal/ratelimit"
	subscriptionHandler "push-server/internal/subscription/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	authService         *auth.Service
	rateLimiter         *ratelimit.Service
	campaignHandler     campaignHandler.Handler
	subscriptionHandler subscriptionHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authService *auth.Service,
	rateLimiter *ratelimit.Service,
	campaignHandler campaignHandler.Handler,
	subscriptionHandler subscriptionHandler.Handler,
) API {
	return API{
		router:              router,
		authService:         authService,
		rateLimiter:         rateLimiter,
		campaignHandler:     campaignHandler,
		subscriptionHandler: subscriptionHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	// Public endpoints hit by browsers and service workers. Rate limited
	// per client IP since they carry no credentials.
	publicGroup := apiGroup.Group("", a.rateLimiter.Middleware())
	{
		publicGroup.POST("/sites", a.subscriptionHandler.HandleRegisterSite)
		publicGroup.GET("/sites/:siteID/vapid-public-key", a.subscriptionHandler.HandleVAPIDPublicKey)
		publicGroup.POST("/sites/:siteID/subscriptions", a.subscriptionHandler.HandleSubscribe)
		publicGroup.POST("/sites/:siteID/unsubscribe", a.subscriptionHandler.HandleUnsubscribe)
		publicGroup.POST("/track/click/:deliveryID", a.subscriptionHandler.HandleTrackClick)
		publicGroup.POST("/track/close/:deliveryID", a.subscriptionHandler.HandleTrackClose)
	}

	// Admin endpoints authenticated with the site API token.
	adminGroup := apiGroup.Group("", a.authService.Middleware())
	{
		adminGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		adminGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		adminGroup.GET("/campaigns/:campaignID", a.campaignHandler.HandleGetCampaign)
		adminGroup.POST("/campaigns/:campaignID/dispatch", a.campaignHandler.HandleDispatchCampaign)
		adminGroup.POST("/campaigns/:campaignID/schedule", a.campaignHandler.HandleScheduleCampaign)
		adminGroup.POST("/campaigns/:campaignID/pause", a.campaignHandler.HandlePauseCampaign)
		adminGroup.POST("/campaigns/:campaignID/resume", a.campaignHandler.HandleResumeCampaign)
		adminGroup.POST("/campaigns/:campaignID/cancel", a.campaignHandler.HandleCancelCampaign)
		adminGroup.GET("/campaigns/:campaignID/stats", a.campaignHandler.HandleCampaignStats)
		adminGroup.GET("/campaigns/:campaignID/deliveries", a.campaignHandler.HandleCampaignDeliveries)
		adminGroup.GET("/scheduler/status", a.campaignHandler.HandleSchedulerStatus)

		adminGroup.POST("/segments", a.subscriptionHandler.HandleCreateSegment)
		adminGroup.POST("/segments/:segmentID/members", a.subscriptionHandler.HandleAddSegmentMember)
		adminGroup.DELETE("/segments/:segmentID/members", a.subscriptionHandler.HandleRemoveSegmentMember)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
