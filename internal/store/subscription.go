package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UpsertSubscriptionParams represents parameters for registering a push endpoint
type UpsertSubscriptionParams struct {
	SiteID   uuid.UUID
	Endpoint string
	P256dh   string
	Auth     string
}

const sqlUpsertSubscription = `
INSERT INTO subscriptions (site_id, endpoint, p256dh, auth, is_active, last_seen_at)
VALUES ($1, $2, $3, $4, TRUE, NOW())
ON CONFLICT (site_id, endpoint)
DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth, is_active = TRUE,
              last_seen_at = NOW(), updated_at = NOW()
RETURNING id, site_id, endpoint, p256dh, auth, is_active, created_at, updated_at, last_seen_at
`

// UpsertSubscription creates a subscription or reactivates an existing one for
// the same (site, endpoint), refreshing its encryption keys.
func (s *Store) UpsertSubscription(ctx context.Context, params UpsertSubscriptionParams) (Subscription, error) {
	var sub Subscription
	err := s.db.GetContext(ctx, &sub, sqlUpsertSubscription,
		params.SiteID, params.Endpoint, params.P256dh, params.Auth)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert subscription", err)
		return Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return sub, nil
}

const sqlGetActiveSubscriptions = `
SELECT id, site_id, endpoint, p256dh, auth, is_active, created_at, updated_at, last_seen_at
FROM subscriptions
WHERE site_id = $1 AND is_active = TRUE
ORDER BY created_at
`

const sqlGetActiveSubscriptionsInSegment = `
SELECT s.id, s.site_id, s.endpoint, s.p256dh, s.auth, s.is_active, s.created_at, s.updated_at, s.last_seen_at
FROM subscriptions s
JOIN segment_members m ON m.subscription_id = s.id
WHERE s.site_id = $1 AND s.is_active = TRUE AND m.segment_id = $2
ORDER BY s.created_at
`

// GetActiveSubscriptions returns a site's active subscribers, restricted to a
// segment when segmentID is set.
func (s *Store) GetActiveSubscriptions(ctx context.Context, siteID uuid.UUID, segmentID *uuid.UUID) ([]Subscription, error) {
	var subs []Subscription
	var err error
	if segmentID != nil {
		err = s.db.SelectContext(ctx, &subs, sqlGetActiveSubscriptionsInSegment, siteID, *segmentID)
	} else {
		err = s.db.SelectContext(ctx, &subs, sqlGetActiveSubscriptions, siteID)
	}
	if err != nil {
		s.logger.Error(ctx, "failed to get active subscriptions", err)
		return nil, fmt.Errorf("failed to get active subscriptions: %w", err)
	}
	return subs, nil
}

const sqlGetSubscriptionByID = `
SELECT id, site_id, endpoint, p256dh, auth, is_active, created_at, updated_at, last_seen_at
FROM subscriptions
WHERE id = $1
`

// GetSubscriptionByID retrieves a subscription by ID
func (s *Store) GetSubscriptionByID(ctx context.Context, subscriptionID uuid.UUID) (Subscription, error) {
	var sub Subscription
	err := s.db.GetContext(ctx, &sub, sqlGetSubscriptionByID, subscriptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get subscription by id", err)
		return Subscription{}, fmt.Errorf("failed to get subscription by id: %w", err)
	}
	return sub, nil
}

const sqlDeactivateSubscription = `
UPDATE subscriptions SET is_active = FALSE, updated_at = NOW() WHERE id = $1
`

// DeactivateSubscription marks a subscription inactive. Used for explicit
// unsubscribes and for endpoints the push service reports as permanently gone.
func (s *Store) DeactivateSubscription(ctx context.Context, subscriptionID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateSubscription, subscriptionID)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate subscription", err)
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlDeactivateSubscriptionByEndpoint = `
UPDATE subscriptions SET is_active = FALSE, updated_at = NOW()
WHERE site_id = $1 AND endpoint = $2
`

// DeactivateSubscriptionByEndpoint marks a subscription inactive by its
// (site, endpoint) identity, used by the public unsubscribe path.
func (s *Store) DeactivateSubscriptionByEndpoint(ctx context.Context, siteID uuid.UUID, endpoint string) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateSubscriptionByEndpoint, siteID, endpoint)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate subscription by endpoint", err)
		return fmt.Errorf("failed to deactivate subscription by endpoint: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
