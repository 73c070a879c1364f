package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// sent_at is the attempt time: both the sent and failed settlement paths
// stamp it, so it is never NULL on a settled row.
const deliveryColumns = `id, campaign_id, subscription_id, status, error_message,
sent_at, clicked_at, closed_at, created_at`

const sqlCreateDelivery = `
INSERT INTO deliveries (campaign_id, subscription_id, status)
VALUES ($1, $2, $3)
RETURNING ` + deliveryColumns

// CreateDelivery inserts a queued delivery row before the push attempt is made.
func (s *Store) CreateDelivery(ctx context.Context, campaignID, subscriptionID uuid.UUID) (Delivery, error) {
	var delivery Delivery
	err := s.db.GetContext(ctx, &delivery, sqlCreateDelivery, campaignID, subscriptionID, DeliveryStatusQueued)
	if err != nil {
		s.logger.Error(ctx, "failed to create delivery", err)
		return Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}
	return delivery, nil
}

const sqlMarkDeliverySent = `
UPDATE deliveries SET status = $2, sent_at = NOW() WHERE id = $1
`

// MarkDeliverySent records a successful push attempt
func (s *Store) MarkDeliverySent(ctx context.Context, deliveryID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkDeliverySent, deliveryID, DeliveryStatusSent)
	if err != nil {
		s.logger.Error(ctx, "failed to mark delivery sent", err)
		return fmt.Errorf("failed to mark delivery sent: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlMarkDeliveryFailed = `
UPDATE deliveries SET status = $2, error_message = $3, sent_at = NOW() WHERE id = $1
`

// MarkDeliveryFailed records a failed push attempt with its error message.
// The attempt time is stamped in sent_at either way; daily rollups filter on
// it, so a failed row without it would never be counted.
func (s *Store) MarkDeliveryFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkDeliveryFailed, deliveryID, DeliveryStatusFailed, errorMessage)
	if err != nil {
		s.logger.Error(ctx, "failed to mark delivery failed", err)
		return fmt.Errorf("failed to mark delivery failed: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlMarkDeliveryClicked = `
UPDATE deliveries
SET status = $2, clicked_at = COALESCE(clicked_at, NOW())
WHERE id = $1 AND status IN ($3, $2)
RETURNING ` + deliveryColumns

// MarkDeliveryClicked promotes a sent delivery to clicked. Repeat clicks keep
// the first clicked_at timestamp. Returns the updated delivery so callers can
// refresh the owning campaign's stats.
func (s *Store) MarkDeliveryClicked(ctx context.Context, deliveryID uuid.UUID) (Delivery, error) {
	var delivery Delivery
	err := s.db.GetContext(ctx, &delivery, sqlMarkDeliveryClicked, deliveryID,
		DeliveryStatusClicked, DeliveryStatusSent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Delivery{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to mark delivery clicked", err)
		return Delivery{}, fmt.Errorf("failed to mark delivery clicked: %w", err)
	}
	return delivery, nil
}

const sqlMarkDeliveryClosed = `
UPDATE deliveries SET closed_at = COALESCE(closed_at, NOW()) WHERE id = $1
`

// MarkDeliveryClosed records that the notification was dismissed
func (s *Store) MarkDeliveryClosed(ctx context.Context, deliveryID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkDeliveryClosed, deliveryID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark delivery closed", err)
		return fmt.Errorf("failed to mark delivery closed: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetDeliveriesByCampaign = `
SELECT ` + deliveryColumns + `
FROM deliveries
WHERE campaign_id = $1
ORDER BY created_at
`

// GetDeliveriesByCampaign returns every delivery row for a campaign
func (s *Store) GetDeliveriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Delivery, error) {
	var deliveries []Delivery
	err := s.db.SelectContext(ctx, &deliveries, sqlGetDeliveriesByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get deliveries by campaign", err)
		return nil, fmt.Errorf("failed to get deliveries by campaign: %w", err)
	}
	return deliveries, nil
}
