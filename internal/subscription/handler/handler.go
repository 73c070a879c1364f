package handler

import (
	"errors"
	"net/http"

	"push-server/internal/apierrors"
	"push-server/internal/observability"
	"push-server/internal/subscription/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenIssuer mints the site-scoped API token returned at registration.
type TokenIssuer interface {
	IssueToken(siteID uuid.UUID) (string, error)
}

type Handler struct {
	processor processor.SubscriptionProcessor
	tokens    TokenIssuer
	logger    *observability.Logger
}

func New(processor processor.SubscriptionProcessor, tokens TokenIssuer, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterSiteRequest represents the HTTP request for registering a site
type RegisterSiteRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
}

// SubscribeRequest mirrors the PushSubscription JSON a browser produces.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// UnsubscribeRequest represents the HTTP request for removing a subscription
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
}

// CreateSegmentRequest represents the HTTP request for creating a segment
type CreateSegmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// SegmentMemberRequest represents the HTTP request for segment membership changes
type SegmentMemberRequest struct {
	SubscriptionID uuid.UUID `json:"subscription_id" binding:"required"`
}

// HandleRegisterSite provisions a new site with a fresh VAPID keypair
func (h *Handler) HandleRegisterSite(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	site, err := h.processor.RegisterSite(ctx, processor.RegisterSiteParams{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	// The API token is only ever returned here; it cannot be retrieved later.
	token, err := h.tokens.IssueToken(site.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"site":      site,
		"api_token": token,
	})
}

// HandleVAPIDPublicKey returns the public key browsers subscribe with
func (h *Handler) HandleVAPIDPublicKey(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteParam(c)
	if !ok {
		return
	}

	key, err := h.processor.VAPIDPublicKey(ctx, siteID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"public_key": key})
}

// HandleSubscribe registers or reactivates a browser push subscription
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteParam(c)
	if !ok {
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "site_id", Value: siteID.String()},
	)

	sub, err := h.processor.Subscribe(ctx, siteID, processor.SubscribeParams{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// HandleUnsubscribe deactivates a subscription by endpoint
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteParam(c)
	if !ok {
		return
	}

	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.Unsubscribe(ctx, siteID, req.Endpoint); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleTrackClick records a notification click from the service worker
func (h *Handler) HandleTrackClick(c *gin.Context) {
	ctx := c.Request.Context()

	deliveryID, ok := h.getDeliveryParam(c)
	if !ok {
		return
	}

	if err := h.processor.TrackClick(ctx, deliveryID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleTrackClose records a notification dismissal
func (h *Handler) HandleTrackClose(c *gin.Context) {
	ctx := c.Request.Context()

	deliveryID, ok := h.getDeliveryParam(c)
	if !ok {
		return
	}

	if err := h.processor.TrackClose(ctx, deliveryID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleCreateSegment creates a subscriber segment
func (h *Handler) HandleCreateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteContext(c)
	if !ok {
		return
	}

	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	segment, err := h.processor.CreateSegment(ctx, siteID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// HandleAddSegmentMember adds a subscription to a segment
func (h *Handler) HandleAddSegmentMember(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteContext(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentParam(c)
	if !ok {
		return
	}

	var req SegmentMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.AddSegmentMember(ctx, siteID, segmentID, req.SubscriptionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleRemoveSegmentMember removes a subscription from a segment
func (h *Handler) HandleRemoveSegmentMember(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteContext(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentParam(c)
	if !ok {
		return
	}

	var req SegmentMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.RemoveSegmentMember(ctx, siteID, segmentID, req.SubscriptionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getSiteParam reads the site ID from the URL path on public routes.
func (h *Handler) getSiteParam(c *gin.Context) (uuid.UUID, bool) {
	siteID, err := uuid.Parse(c.Param("siteID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid site ID format")
		return uuid.Nil, false
	}
	return siteID, true
}

// getSiteContext reads the authenticated site ID on admin routes.
func (h *Handler) getSiteContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("site_id")
	if !exists {
		apierrors.Unauthorized(c, "Site ID not found in context")
		return uuid.Nil, false
	}
	siteID, err := uuid.Parse(raw.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid site ID format")
		return uuid.Nil, false
	}
	return siteID, true
}

func (h *Handler) getSegmentParam(c *gin.Context) (uuid.UUID, bool) {
	segmentID, err := uuid.Parse(c.Param("segmentID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid segment ID format")
		return uuid.Nil, false
	}
	return segmentID, true
}

func (h *Handler) getDeliveryParam(c *gin.Context) (uuid.UUID, bool) {
	deliveryID, err := uuid.Parse(c.Param("deliveryID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid delivery ID format")
		return uuid.Nil, false
	}
	return deliveryID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrSiteNotFound):
		apierrors.NotFound(c, "Site not found")
	case errors.Is(err, processor.ErrDeliveryNotFound):
		apierrors.NotFound(c, "Delivery not found")
	case errors.Is(err, processor.ErrSegmentNotFound):
		apierrors.NotFound(c, "Segment not found")
	default:
		apierrors.InternalError(c, err)
	}
}
