// Package stats rolls daily delivery outcomes up into campaign aggregates.
package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"push-server/internal/observability"
	"push-server/internal/store"
)

// AggregatorStore is the subset of store operations the aggregator needs.
type AggregatorStore interface {
	GetDeliveryDailyCounts(ctx context.Context, campaignID uuid.UUID, day time.Time) (store.DeliveryDailyCounts, error)
	UpsertCampaignDailyStats(ctx context.Context, stats store.CampaignDailyStats) error
	GetCampaignDailyStats(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignDailyStats, error)
}

// Aggregator recomputes per-day campaign stats from delivery rows. Refresh is
// idempotent: it always recounts from deliveries and overwrites the aggregate
// row, so calling it after every dispatch (or ad hoc) never double-counts.
type Aggregator struct {
	store  AggregatorStore
	logger *observability.Logger
}

func NewAggregator(store AggregatorStore, logger *observability.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// Refresh recomputes the aggregate row for one campaign and day.
func (a *Aggregator) Refresh(ctx context.Context, campaignID uuid.UUID, day time.Time) error {
	counts, err := a.store.GetDeliveryDailyCounts(ctx, campaignID, day)
	if err != nil {
		return fmt.Errorf("failed to count deliveries: %w", err)
	}

	row := store.CampaignDailyStats{
		CampaignID:       campaignID,
		Date:             day,
		SentCount:        counts.SentCount,
		FailedCount:      counts.FailedCount,
		ClickedCount:     counts.ClickedCount,
		UniqueClicks:     counts.UniqueClicks,
		ClickThroughRate: ClickThroughRate(counts.ClickedCount, counts.SentCount),
	}
	if err := a.store.UpsertCampaignDailyStats(ctx, row); err != nil {
		return fmt.Errorf("failed to upsert daily stats: %w", err)
	}

	a.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "sent", Value: row.SentCount},
		observability.Field{Key: "clicked", Value: row.ClickedCount},
	), "refreshed campaign daily stats")
	return nil
}

// Daily returns a campaign's aggregate rows, newest first.
func (a *Aggregator) Daily(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignDailyStats, error) {
	return a.store.GetCampaignDailyStats(ctx, campaignID)
}

// ClickThroughRate is clicked deliveries over sent deliveries as a
// percentage, rounded to two decimals. Unique clickers are tracked as their
// own column and do not feed the rate. Zero sends yield zero rather than a
// division error.
func ClickThroughRate(clickedCount, sentCount int) float64 {
	if sentCount == 0 {
		return 0
	}
	rate := float64(clickedCount) / float64(sentCount) * 100
	return math.Round(rate*100) / 100
}
