package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"push-server/internal/apierrors"
	"push-server/internal/campaign/processor"
	"push-server/internal/observability"
	"push-server/internal/scheduler"
	"push-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecurringScheduleRequest represents a recurrence rule in HTTP request
type RecurringScheduleRequest struct {
	Frequency     string `json:"frequency" binding:"required,oneof=daily weekly monthly interval"`
	Hour          int    `json:"hour" binding:"gte=0,lte=23"`
	Minute        int    `json:"minute" binding:"gte=0,lte=59"`
	DayOfWeek     int    `json:"day_of_week" binding:"gte=0,lte=6"`
	DayOfMonth    int    `json:"day_of_month" binding:"gte=0,lte=31"`
	IntervalValue int    `json:"interval_value" binding:"gte=0"`
	IntervalUnit  string `json:"interval_unit" binding:"omitempty,oneof=minutes hours days"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Title             string                    `json:"title" binding:"required,min=1,max=255"`
	Body              string                    `json:"body" binding:"required,min=1,max=2000"`
	URL               *string                   `json:"url,omitempty" binding:"omitempty,url"`
	IconURL           *string                   `json:"icon_url,omitempty" binding:"omitempty,url"`
	ImageURL          *string                   `json:"image_url,omitempty" binding:"omitempty,url"`
	DeliveryType      string                    `json:"delivery_type" binding:"required,oneof=immediate scheduled recurring"`
	ScheduledAt       *time.Time                `json:"scheduled_at,omitempty"`
	RecurringSchedule *RecurringScheduleRequest `json:"recurring_schedule,omitempty"`
	SegmentID         *uuid.UUID                `json:"segment_id,omitempty"`
}

// ScheduleCampaignRequest represents the HTTP request for arming a campaign
type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "site_id", Value: siteID.String()},
		observability.Field{Key: "delivery_type", Value: req.DeliveryType},
	)

	params := processor.CreateCampaignParams{
		Title:        req.Title,
		Body:         req.Body,
		URL:          req.URL,
		IconURL:      req.IconURL,
		ImageURL:     req.ImageURL,
		DeliveryType: req.DeliveryType,
		ScheduledAt:  req.ScheduledAt,
		SegmentID:    req.SegmentID,
	}
	if req.RecurringSchedule != nil {
		params.RecurringSchedule = &store.RecurringSchedule{
			Frequency:     req.RecurringSchedule.Frequency,
			Hour:          req.RecurringSchedule.Hour,
			Minute:        req.RecurringSchedule.Minute,
			DayOfWeek:     req.RecurringSchedule.DayOfWeek,
			DayOfMonth:    req.RecurringSchedule.DayOfMonth,
			IntervalValue: req.RecurringSchedule.IntervalValue,
			IntervalUnit:  req.RecurringSchedule.IntervalUnit,
		}
	}

	campaign, err := h.processor.Create(ctx, siteID, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists all campaigns for the site
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.List(ctx, siteID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign returns a single campaign with its next fire time
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.Get(ctx, siteID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDispatchCampaign sends a campaign to all active subscribers right now
func (h *Handler) HandleDispatchCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	result, err := h.processor.DispatchNow(ctx, siteID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleScheduleCampaign arms a scheduled campaign for a fire time
func (h *Handler) HandleScheduleCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req ScheduleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.Schedule(ctx, siteID, campaignID, req.ScheduledAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandlePauseCampaign stops an active recurring campaign
func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	h.transition(c, h.processor.Pause)
}

// HandleResumeCampaign reactivates a stopped recurring campaign
func (h *Handler) HandleResumeCampaign(c *gin.Context) {
	h.transition(c, h.processor.Resume)
}

// HandleCancelCampaign revokes a pending campaign before it fires
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	h.transition(c, h.processor.Cancel)
}

// HandleCampaignStats returns daily delivery aggregates for a campaign
func (h *Handler) HandleCampaignStats(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	stats, err := h.processor.Stats(ctx, siteID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// HandleSchedulerStatus reports the scheduler poll-loop state and armed campaigns
func (h *Handler) HandleSchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.SchedulerStatus())
}

// HandleCampaignDeliveries returns every delivery row for a campaign
func (h *Handler) HandleCampaignDeliveries(c *gin.Context) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	deliveries, err := h.processor.Deliveries(ctx, siteID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deliveries": deliveries})
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, siteID, campaignID uuid.UUID) (store.Campaign, error)) {
	ctx := c.Request.Context()

	siteID, ok := h.getSiteID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := op(ctx, siteID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) getSiteID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaignID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID format")
		return uuid.Nil, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrSiteNotFound):
		apierrors.NotFound(c, "Site not found")
	case errors.Is(err, processor.ErrScheduleRequired):
		apierrors.BadRequest(c, "SCHEDULE_REQUIRED", "Recurring campaigns require a schedule rule")
	case errors.Is(err, processor.ErrInvalidRecurrence):
		apierrors.BadRequest(c, "INVALID_SCHEDULE", err.Error())
	case errors.Is(err, processor.ErrAlreadyDispatched):
		apierrors.Conflict(c, "ALREADY_DISPATCHED", "Campaign has already been dispatched")
	case errors.Is(err, processor.ErrNotDispatchable):
		apierrors.UnprocessableEntity(c, "NOT_DISPATCHABLE", err.Error())
	case errors.Is(err, processor.ErrCampaignNotPending):
		apierrors.Conflict(c, "NOT_PENDING", "Campaign is not pending")
	case errors.Is(err, scheduler.ErrNotSchedulable):
		apierrors.UnprocessableEntity(c, "NOT_SCHEDULABLE", err.Error())
	case errors.Is(err, store.ErrInvalidStatusTransition):
		apierrors.UnprocessableEntity(c, "INVALID_TRANSITION", err.Error())
	default:
		apierrors.InternalError(c, err)
	}
}
