package dispatch

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"push-server/internal/clients/webpush"
	"push-server/internal/observability"
	"push-server/internal/store"
)

// ErrPushCredentialsMissing means the owning site has no usable VAPID keypair,
// so no subscriber of that site can be pushed to.
var ErrPushCredentialsMissing = errors.New("site has no push credentials")

// DispatchStore defines the database operations required by the Executor
type DispatchStore interface {
	GetCampaignWithSite(ctx context.Context, campaignID uuid.UUID) (store.Campaign, store.Site, error)
	GetActiveSubscriptions(ctx context.Context, siteID uuid.UUID, segmentID *uuid.UUID) ([]store.Subscription, error)
	CreateDelivery(ctx context.Context, campaignID, subscriptionID uuid.UUID) (store.Delivery, error)
	MarkDeliverySent(ctx context.Context, deliveryID uuid.UUID) error
	MarkDeliveryFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) error
	DeactivateSubscription(ctx context.Context, subscriptionID uuid.UUID) error
	UpdateCampaignStatusIfCurrent(ctx context.Context, campaignID uuid.UUID, expected, next string) (bool, error)
}

// PushSender sends one web-push message. Satisfied by *webpush.Client.
type PushSender interface {
	Send(ctx context.Context, creds webpush.Credentials, endpoint string, keys webpush.Keys, payload []byte) error
}

// StatsRefresher recomputes a campaign's daily aggregates after a dispatch.
type StatsRefresher interface {
	Refresh(ctx context.Context, campaignID uuid.UUID, day time.Time) error
}

// EventSink publishes campaign lifecycle events. Publishing is best-effort and
// never affects dispatch outcomes.
type EventSink interface {
	CampaignDispatched(ctx context.Context, siteID, campaignID uuid.UUID, total, sent, failed int)
	CampaignCompleted(ctx context.Context, siteID, campaignID uuid.UUID)
	CampaignFailed(ctx context.Context, siteID, campaignID uuid.UUID, reason string)
}

// Result summarizes one campaign dispatch.
type Result struct {
	Total       int `json:"total"`
	SentCount   int `json:"sent_count"`
	FailedCount int `json:"failed_count"`
}

// notificationPayload is what the service worker receives. The delivery ID
// rides along so click and close callbacks can be attributed to a row.
type notificationPayload struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	URL        string `json:"url,omitempty"`
	IconURL    string `json:"icon,omitempty"`
	ImageURL   string `json:"image,omitempty"`
	CampaignID string `json:"campaign_id"`
	DeliveryID string `json:"delivery_id"`
}

// Executor fans a claimed campaign out to the site's active subscribers.
//
// The caller owns the claim: a campaign must already be in sending status when
// Execute is invoked. Subscribers are processed in fixed-size batches, pushes
// within a batch run concurrently and batches run one after another, which caps
// both in-flight HTTP requests and open database work. Every push attempt gets
// a delivery row before the send, so interrupted dispatches leave a trail
// instead of silently dropping subscribers.
type Executor struct {
	store     DispatchStore
	push      PushSender
	stats     StatsRefresher
	events    EventSink
	batchSize int
	logger    *observability.Logger
}

func NewExecutor(
	store DispatchStore,
	push PushSender,
	stats StatsRefresher,
	events EventSink,
	batchSize int,
	logger *observability.Logger,
) *Executor {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Executor{
		store:     store,
		push:      push,
		stats:     stats,
		events:    events,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Execute sends a sending-status campaign to every active subscriber and moves
// one-shot campaigns to their terminal status. Individual push failures are
// recorded and counted, never returned; only campaign-level problems (missing
// campaign, missing credentials, store outage) produce an error, and those
// also move the campaign to failed.
func (e *Executor) Execute(ctx context.Context, campaignID uuid.UUID) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, site, err := e.store.GetCampaignWithSite(ctx, campaignID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load campaign: %w", err)
	}

	if site.VAPIDPublicKey == "" || site.VAPIDPrivateKey == "" {
		return Result{}, e.failCampaign(ctx, campaign, ErrPushCredentialsMissing)
	}

	subscriptions, err := e.store.GetActiveSubscriptions(ctx, campaign.SiteID, campaign.SegmentID)
	if err != nil {
		return Result{}, e.failCampaign(ctx, campaign, fmt.Errorf("failed to load subscribers: %w", err))
	}

	// A broadcast to nobody is a success, not an error.
	if len(subscriptions) == 0 {
		e.logger.Info(ctx, "campaign has no active subscribers, completing")
		e.events.CampaignDispatched(ctx, campaign.SiteID, campaign.ID, 0, 0, 0)
		return Result{}, e.completeCampaign(ctx, campaign)
	}

	creds := webpush.Credentials{
		Subscriber: site.ContactEmail,
		PublicKey:  site.VAPIDPublicKey,
		PrivateKey: site.VAPIDPrivateKey,
	}

	result := Result{Total: len(subscriptions)}
	for start := 0; start < len(subscriptions); start += e.batchSize {
		end := start + e.batchSize
		if end > len(subscriptions) {
			end = len(subscriptions)
		}
		sent, failed := e.sendBatch(ctx, campaign, creds, subscriptions[start:end])
		result.SentCount += sent
		result.FailedCount += failed
	}

	e.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "total", Value: result.Total},
		observability.Field{Key: "sent", Value: result.SentCount},
		observability.Field{Key: "failed", Value: result.FailedCount},
	), "campaign dispatch finished")

	e.events.CampaignDispatched(ctx, campaign.SiteID, campaign.ID, result.Total, result.SentCount, result.FailedCount)

	if err := e.completeCampaign(ctx, campaign); err != nil {
		return result, err
	}

	if err := e.stats.Refresh(ctx, campaign.ID, time.Now().UTC()); err != nil {
		// Aggregates are derived data and can be rebuilt on the next refresh.
		e.logger.Error(ctx, "failed to refresh campaign stats after dispatch", err)
	}

	return result, nil
}

// sendBatch pushes to one batch of subscribers concurrently and waits for all
// of them before returning, so at most batchSize sends are in flight.
func (e *Executor) sendBatch(ctx context.Context, campaign store.Campaign, creds webpush.Credentials, batch []store.Subscription) (sent, failed int) {
	outcomes := make([]bool, len(batch))

	var wg sync.WaitGroup
	for i, sub := range batch {
		wg.Add(1)
		go func(i int, sub store.Subscription) {
			defer wg.Done()
			outcomes[i] = e.sendOne(ctx, campaign, creds, sub)
		}(i, sub)
	}
	wg.Wait()

	for _, ok := range outcomes {
		if ok {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}

// sendOne records a queued delivery, attempts the push and settles the row.
// Endpoints the push service reports as permanently gone are deactivated so
// they are never targeted again.
func (e *Executor) sendOne(ctx context.Context, campaign store.Campaign, creds webpush.Credentials, sub store.Subscription) bool {
	delivery, err := e.store.CreateDelivery(ctx, campaign.ID, sub.ID)
	if err != nil {
		e.logger.Error(ctx, fmt.Sprintf("failed to create delivery for subscription %s", sub.ID), err)
		return false
	}

	payload, err := json.Marshal(notificationPayload{
		Title:      campaign.Title,
		Body:       campaign.Body,
		URL:        stringValue(campaign.URL),
		IconURL:    stringValue(campaign.IconURL),
		ImageURL:   stringValue(campaign.ImageURL),
		CampaignID: campaign.ID.String(),
		DeliveryID: delivery.ID.String(),
	})
	if err != nil {
		e.settleFailed(ctx, delivery.ID, err)
		return false
	}

	err = e.push.Send(ctx, creds, sub.Endpoint, webpush.Keys{P256dh: sub.P256dh, Auth: sub.Auth}, payload)
	if err != nil {
		var sendErr *webpush.SendError
		if errors.As(err, &sendErr) && sendErr.Permanent() {
			if deactivateErr := e.store.DeactivateSubscription(ctx, sub.ID); deactivateErr != nil {
				e.logger.Error(ctx, fmt.Sprintf("failed to deactivate gone subscription %s", sub.ID), deactivateErr)
			} else {
				e.logger.Info(observability.WithFields(ctx,
					observability.Field{Key: "subscription_id", Value: sub.ID.String()},
				), "deactivated subscription gone from push service")
			}
		}
		e.settleFailed(ctx, delivery.ID, err)
		return false
	}

	if err := e.store.MarkDeliverySent(ctx, delivery.ID); err != nil {
		e.logger.Error(ctx, fmt.Sprintf("failed to mark delivery %s sent", delivery.ID), err)
	}
	return true
}

func (e *Executor) settleFailed(ctx context.Context, deliveryID uuid.UUID, cause error) {
	if err := e.store.MarkDeliveryFailed(ctx, deliveryID, cause.Error()); err != nil {
		e.logger.Error(ctx, fmt.Sprintf("failed to mark delivery %s failed", deliveryID), err)
	}
}

// completeCampaign moves a one-shot campaign from sending to completed.
// Recurring campaigns are left in sending status for the scheduler to re-arm.
func (e *Executor) completeCampaign(ctx context.Context, campaign store.Campaign) error {
	if campaign.DeliveryType == store.DeliveryTypeRecurring {
		return nil
	}

	updated, err := e.store.UpdateCampaignStatusIfCurrent(ctx, campaign.ID,
		store.CampaignStatusSending, store.CampaignStatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to complete campaign: %w", err)
	}
	if !updated {
		// Someone else moved the campaign mid-dispatch; the deliveries are
		// already written, so report rather than fight over the row.
		e.logger.Warn(ctx, "campaign left sending status during dispatch")
		return nil
	}

	e.events.CampaignCompleted(ctx, campaign.SiteID, campaign.ID)
	return nil
}

// failCampaign marks a one-shot campaign failed and reports the cause. The
// returned error is always the cause so callers can propagate it.
func (e *Executor) failCampaign(ctx context.Context, campaign store.Campaign, cause error) error {
	e.logger.Error(ctx, "campaign dispatch failed", cause)

	if campaign.DeliveryType != store.DeliveryTypeRecurring {
		if _, err := e.store.UpdateCampaignStatusIfCurrent(ctx, campaign.ID,
			store.CampaignStatusSending, store.CampaignStatusFailed); err != nil {
			e.logger.Error(ctx, "failed to mark campaign failed", err)
		}
	}

	e.events.CampaignFailed(ctx, campaign.SiteID, campaign.ID, cause.Error())
	return cause
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
