package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"push-server/internal/clients/webpush"
	"push-server/internal/observability"
	"push-server/internal/store"
)

// SubscriptionStore defines the database operations required by SubscriptionProcessor
type SubscriptionStore interface {
	CreateSite(ctx context.Context, params store.CreateSiteParams) (store.Site, error)
	GetSiteByID(ctx context.Context, siteID uuid.UUID) (store.Site, error)
	UpsertSubscription(ctx context.Context, params store.UpsertSubscriptionParams) (store.Subscription, error)
	DeactivateSubscriptionByEndpoint(ctx context.Context, siteID uuid.UUID, endpoint string) error
	MarkDeliveryClicked(ctx context.Context, deliveryID uuid.UUID) (store.Delivery, error)
	MarkDeliveryClosed(ctx context.Context, deliveryID uuid.UUID) error
	CreateSegment(ctx context.Context, siteID uuid.UUID, name string) (store.Segment, error)
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	AddSegmentMember(ctx context.Context, segmentID, subscriptionID uuid.UUID) error
	RemoveSegmentMember(ctx context.Context, segmentID, subscriptionID uuid.UUID) error
}

// StatsRefresher recomputes a campaign's daily aggregates after a click lands.
type StatsRefresher interface {
	Refresh(ctx context.Context, campaignID uuid.UUID, day time.Time) error
}

var (
	ErrSiteNotFound     = errors.New("site not found")
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrSegmentNotFound  = errors.New("segment not found")
)

type SubscriptionProcessor struct {
	store  SubscriptionStore
	stats  StatsRefresher
	logger *observability.Logger
}

func New(store SubscriptionStore, stats StatsRefresher, logger *observability.Logger) SubscriptionProcessor {
	return SubscriptionProcessor{
		store:  store,
		stats:  stats,
		logger: logger,
	}
}

// RegisterSiteParams represents parameters for registering a site
type RegisterSiteParams struct {
	Name         string
	ContactEmail string
}

// RegisterSite provisions a new tenant with a fresh VAPID keypair. The keypair
// is fixed at registration: browsers bind their subscriptions to it, so
// rotating it would orphan every existing subscriber.
func (p *SubscriptionProcessor) RegisterSite(ctx context.Context, params RegisterSiteParams) (store.Site, error) {
	publicKey, privateKey, err := webpush.GenerateKeys()
	if err != nil {
		return store.Site{}, err
	}

	site, err := p.store.CreateSite(ctx, store.CreateSiteParams{
		Name:            params.Name,
		ContactEmail:    params.ContactEmail,
		VAPIDPublicKey:  publicKey,
		VAPIDPrivateKey: privateKey,
	})
	if err != nil {
		return store.Site{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "site_id", Value: site.ID.String()},
	), "site registered")
	return site, nil
}

// VAPIDPublicKey returns the key browsers need to subscribe to a site.
func (p *SubscriptionProcessor) VAPIDPublicKey(ctx context.Context, siteID uuid.UUID) (string, error) {
	site, err := p.store.GetSiteByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrSiteNotFound
		}
		return "", err
	}
	return site.VAPIDPublicKey, nil
}

// SubscribeParams represents parameters for registering a browser subscription
type SubscribeParams struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Subscribe registers or reactivates a browser push subscription. The same
// endpoint re-subscribing updates its keys and comes back active, so a
// subscriber who cleared site data and re-opted-in is not duplicated.
func (p *SubscriptionProcessor) Subscribe(ctx context.Context, siteID uuid.UUID, params SubscribeParams) (store.Subscription, error) {
	if _, err := p.store.GetSiteByID(ctx, siteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscription{}, ErrSiteNotFound
		}
		return store.Subscription{}, err
	}

	return p.store.UpsertSubscription(ctx, store.UpsertSubscriptionParams{
		SiteID:   siteID,
		Endpoint: params.Endpoint,
		P256dh:   params.P256dh,
		Auth:     params.Auth,
	})
}

// Unsubscribe deactivates a subscription by its endpoint. Unknown endpoints
// are fine; the caller only cares that the endpoint will not be pushed to.
func (p *SubscriptionProcessor) Unsubscribe(ctx context.Context, siteID uuid.UUID, endpoint string) error {
	err := p.store.DeactivateSubscriptionByEndpoint(ctx, siteID, endpoint)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// TrackClick promotes a delivery to clicked and refreshes its campaign's
// aggregates for the day the notification was sent.
func (p *SubscriptionProcessor) TrackClick(ctx context.Context, deliveryID uuid.UUID) error {
	delivery, err := p.store.MarkDeliveryClicked(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDeliveryNotFound
		}
		return err
	}

	day := time.Now().UTC()
	if delivery.SentAt != nil {
		day = *delivery.SentAt
	}
	if err := p.stats.Refresh(ctx, delivery.CampaignID, day); err != nil {
		// A stale aggregate heals on the next refresh.
		p.logger.Error(ctx, "failed to refresh stats after click", err)
	}
	return nil
}

// TrackClose records that the notification was dismissed.
func (p *SubscriptionProcessor) TrackClose(ctx context.Context, deliveryID uuid.UUID) error {
	err := p.store.MarkDeliveryClosed(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDeliveryNotFound
		}
		return err
	}
	return nil
}

// CreateSegment creates a named subscriber segment for targeting.
func (p *SubscriptionProcessor) CreateSegment(ctx context.Context, siteID uuid.UUID, name string) (store.Segment, error) {
	if _, err := p.store.GetSiteByID(ctx, siteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSiteNotFound
		}
		return store.Segment{}, err
	}
	return p.store.CreateSegment(ctx, siteID, name)
}

// AddSegmentMember places a subscription in a segment owned by the site.
func (p *SubscriptionProcessor) AddSegmentMember(ctx context.Context, siteID, segmentID, subscriptionID uuid.UUID) error {
	if err := p.ownedSegment(ctx, siteID, segmentID); err != nil {
		return err
	}
	return p.store.AddSegmentMember(ctx, segmentID, subscriptionID)
}

// RemoveSegmentMember takes a subscription out of a segment owned by the site.
func (p *SubscriptionProcessor) RemoveSegmentMember(ctx context.Context, siteID, segmentID, subscriptionID uuid.UUID) error {
	if err := p.ownedSegment(ctx, siteID, segmentID); err != nil {
		return err
	}
	return p.store.RemoveSegmentMember(ctx, segmentID, subscriptionID)
}

// ownedSegment treats another tenant's segment as missing rather than
// forbidden so segment IDs cannot be probed across sites.
func (p *SubscriptionProcessor) ownedSegment(ctx context.Context, siteID, segmentID uuid.UUID) error {
	segment, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSegmentNotFound
		}
		return err
	}
	if segment.SiteID != siteID {
		return ErrSegmentNotFound
	}
	return nil
}
