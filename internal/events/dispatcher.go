package events

import (
	"context"
	"time"

	kafkaClient "push-server/internal/clients/kafka"
	"push-server/internal/observability"

	"github.com/google/uuid"
)

// Event types
const (
	EventCampaignDispatched = "campaign.dispatched"
	EventCampaignCompleted  = "campaign.completed"
	EventCampaignFailed     = "campaign.failed"
)

// Dispatcher publishes campaign lifecycle events. Publish failures are logged
// and swallowed; eventing never affects dispatch outcome.
type Dispatcher struct {
	producer *kafkaClient.Producer
	logger   *observability.Logger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(producer *kafkaClient.Producer, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		producer: producer,
		logger:   logger,
	}
}

func (d *Dispatcher) publish(ctx context.Context, eventType string, siteID, campaignID uuid.UUID, data map[string]interface{}) {
	event := kafkaClient.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		SiteID:     siteID.String(),
		CampaignID: campaignID.String(),
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := d.producer.PublishEvent(ctx, event); err != nil {
		d.logger.Error(ctx, "failed to publish "+eventType+" event", err)
	}
}

// CampaignDispatched publishes a campaign.dispatched event with fan-out counts.
func (d *Dispatcher) CampaignDispatched(ctx context.Context, siteID, campaignID uuid.UUID, total, sent, failed int) {
	d.publish(ctx, EventCampaignDispatched, siteID, campaignID, map[string]interface{}{
		"total":  total,
		"sent":   sent,
		"failed": failed,
	})
}

// CampaignCompleted publishes a campaign.completed event.
func (d *Dispatcher) CampaignCompleted(ctx context.Context, siteID, campaignID uuid.UUID) {
	d.publish(ctx, EventCampaignCompleted, siteID, campaignID, nil)
}

// CampaignFailed publishes a campaign.failed event with the failure reason.
func (d *Dispatcher) CampaignFailed(ctx context.Context, siteID, campaignID uuid.UUID, reason string) {
	d.publish(ctx, EventCampaignFailed, siteID, campaignID, map[string]interface{}{
		"reason": reason,
	})
}
