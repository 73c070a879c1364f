package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	SiteID            uuid.UUID
	Title             string
	Body              string
	URL               *string
	IconURL           *string
	ImageURL          *string
	DeliveryType      string
	Status            string
	ScheduledAt       *time.Time
	RecurringSchedule *RecurringSchedule
	SegmentID         *uuid.UUID
}

const campaignColumns = `id, site_id, title, body, url, icon_url, image_url,
delivery_type, status, scheduled_at, recurring_schedule, segment_id, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (site_id, title, body, url, icon_url, image_url,
                       delivery_type, status, scheduled_at, recurring_schedule, segment_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.SiteID,
		params.Title,
		params.Body,
		params.URL,
		params.IconURL,
		params.ImageURL,
		params.DeliveryType,
		params.Status,
		params.ScheduledAt,
		params.RecurringSchedule,
		params.SegmentID)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

// GetCampaignWithSite retrieves a campaign joined with its owning site's push
// credentials in one round trip.
func (s *Store) GetCampaignWithSite(ctx context.Context, campaignID uuid.UUID) (Campaign, Site, error) {
	var row struct {
		Campaign
		Site Site `db:"site"`
	}
	const q = `
SELECT c.id, c.site_id, c.title, c.body, c.url, c.icon_url, c.image_url,
       c.delivery_type, c.status, c.scheduled_at, c.recurring_schedule, c.segment_id,
       c.created_at, c.updated_at,
       st.id AS "site.id", st.name AS "site.name", st.contact_email AS "site.contact_email",
       st.vapid_public_key AS "site.vapid_public_key",
       st.vapid_private_key AS "site.vapid_private_key",
       st.created_at AS "site.created_at", st.updated_at AS "site.updated_at"
FROM campaigns c
JOIN sites st ON st.id = c.site_id
WHERE c.id = $1
`
	err := s.db.GetContext(ctx, &row, q, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, Site{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign with site", err)
		return Campaign{}, Site{}, fmt.Errorf("failed to get campaign with site: %w", err)
	}
	return row.Campaign, row.Site, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE site_id = $1
ORDER BY created_at DESC
`

// ListCampaigns returns all campaigns for a site, newest first
func (s *Store) ListCampaigns(ctx context.Context, siteID uuid.UUID) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, siteID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaignStatusIfCurrent = `
UPDATE campaigns SET status = $3, updated_at = NOW()
WHERE id = $1 AND status = $2
`

// UpdateCampaignStatusIfCurrent performs a compare-and-swap status update.
// Returns false when the row was not in the expected status, which is how
// concurrent schedulers lose a claim race without error.
func (s *Store) UpdateCampaignStatusIfCurrent(ctx context.Context, campaignID uuid.UUID, expected, next string) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlUpdateCampaignStatusIfCurrent, campaignID, expected, next)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
		return false, fmt.Errorf("failed to update campaign status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlScheduleCampaignAt = `
UPDATE campaigns SET scheduled_at = $2, status = $3, updated_at = NOW()
WHERE id = $1
  AND delivery_type = $4
  AND status IN ($5, $3)
`

// ScheduleCampaignAt arms a one-shot scheduled campaign for the given time.
// Re-arming an already-scheduled campaign replaces the previous arm.
func (s *Store) ScheduleCampaignAt(ctx context.Context, campaignID uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlScheduleCampaignAt, campaignID, at,
		CampaignStatusScheduled, DeliveryTypeScheduled, CampaignStatusDraft)
	if err != nil {
		s.logger.Error(ctx, "failed to schedule campaign", err)
		return fmt.Errorf("failed to schedule campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlRearmRecurringCampaign = `
UPDATE campaigns
SET scheduled_at = $2,
    status = $3,
    recurring_schedule = CASE
      WHEN $4::timestamptz IS NULL THEN recurring_schedule
      ELSE jsonb_set(recurring_schedule, '{last_sent}', to_jsonb($4::timestamptz))
    END,
    updated_at = NOW()
WHERE id = $1 AND delivery_type = $5
`

// RearmRecurringCampaign moves a recurring campaign back to active with its
// next fire time, updating the rule's embedded last_sent when lastSent is set.
// This is the recurring-only write path; one-shot arming goes through
// ScheduleCampaignAt on a disjoint delivery_type partition.
func (s *Store) RearmRecurringCampaign(ctx context.Context, campaignID uuid.UUID, nextFire time.Time, lastSent *time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlRearmRecurringCampaign, campaignID, nextFire,
		CampaignStatusActive, lastSent, DeliveryTypeRecurring)
	if err != nil {
		s.logger.Error(ctx, "failed to rearm recurring campaign", err)
		return fmt.Errorf("failed to rearm recurring campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetDueCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE scheduled_at IS NOT NULL
  AND scheduled_at <= $1
  AND ((delivery_type = $2 AND status = $3) OR (delivery_type = $4 AND status = $5))
ORDER BY scheduled_at ASC
LIMIT $6
`

// GetDueCampaigns returns campaigns whose fire time has arrived and that sit
// in the pending status for their delivery type, oldest first, capped so one
// poll after an outage cannot pick up unbounded work.
func (s *Store) GetDueCampaigns(ctx context.Context, before time.Time, limit int) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueCampaigns, before,
		DeliveryTypeScheduled, CampaignStatusScheduled,
		DeliveryTypeRecurring, CampaignStatusActive,
		limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get due campaigns", err)
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	return campaigns, nil
}
