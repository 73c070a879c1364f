package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sqlGetDeliveryDailyCounts = `
SELECT
    COALESCE(COUNT(*) FILTER (WHERE status IN ($3, $4)), 0)::int AS sent_count,
    COALESCE(COUNT(*) FILTER (WHERE status = $5), 0)::int AS failed_count,
    COALESCE(COUNT(*) FILTER (WHERE clicked_at IS NOT NULL), 0)::int AS clicked_count,
    COALESCE(COUNT(DISTINCT subscription_id) FILTER (WHERE clicked_at IS NOT NULL), 0)::int AS unique_clicks
FROM deliveries
WHERE campaign_id = $1 AND sent_at::date = $2::date
`

// GetDeliveryDailyCounts rolls up a campaign's delivery outcomes for one day.
// Clicked deliveries still count as sent; only transport failures count as
// failed.
func (s *Store) GetDeliveryDailyCounts(ctx context.Context, campaignID uuid.UUID, day time.Time) (DeliveryDailyCounts, error) {
	var counts DeliveryDailyCounts
	err := s.db.GetContext(ctx, &counts, sqlGetDeliveryDailyCounts, campaignID, day,
		DeliveryStatusSent, DeliveryStatusClicked, DeliveryStatusFailed)
	if err != nil {
		s.logger.Error(ctx, "failed to get delivery daily counts", err)
		return DeliveryDailyCounts{}, fmt.Errorf("failed to get delivery daily counts: %w", err)
	}
	return counts, nil
}

const sqlUpsertCampaignDailyStats = `
INSERT INTO campaign_daily_stats
    (campaign_id, date, sent_count, failed_count, clicked_count, unique_clicks, click_through_rate)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (campaign_id, date)
DO UPDATE SET sent_count = EXCLUDED.sent_count,
              failed_count = EXCLUDED.failed_count,
              clicked_count = EXCLUDED.clicked_count,
              unique_clicks = EXCLUDED.unique_clicks,
              click_through_rate = EXCLUDED.click_through_rate
`

// UpsertCampaignDailyStats overwrites the daily aggregate row; repeated
// refreshes never double-count.
func (s *Store) UpsertCampaignDailyStats(ctx context.Context, stats CampaignDailyStats) error {
	_, err := s.db.ExecContext(ctx, sqlUpsertCampaignDailyStats,
		stats.CampaignID,
		stats.Date,
		stats.SentCount,
		stats.FailedCount,
		stats.ClickedCount,
		stats.UniqueClicks,
		stats.ClickThroughRate)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert campaign daily stats", err)
		return fmt.Errorf("failed to upsert campaign daily stats: %w", err)
	}
	return nil
}

const sqlGetCampaignDailyStats = `
SELECT campaign_id, date, sent_count, failed_count, clicked_count, unique_clicks, click_through_rate
FROM campaign_daily_stats
WHERE campaign_id = $1
ORDER BY date DESC
`

// GetCampaignDailyStats returns a campaign's daily aggregates, newest first
func (s *Store) GetCampaignDailyStats(ctx context.Context, campaignID uuid.UUID) ([]CampaignDailyStats, error) {
	var stats []CampaignDailyStats
	err := s.db.SelectContext(ctx, &stats, sqlGetCampaignDailyStats, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign daily stats", err)
		return nil, fmt.Errorf("failed to get campaign daily stats: %w", err)
	}
	return stats, nil
}
