package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Site is a tenant owning subscribers, campaigns and its own VAPID keypair.
// Each subscription is cryptographically bound to the keypair that was active
// when the browser subscribed, so keys are per site, never global.
type Site struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	ContactEmail    string    `db:"contact_email" json:"contact_email"`
	VAPIDPublicKey  string    `db:"vapid_public_key" json:"vapid_public_key"`
	VAPIDPrivateKey string    `db:"vapid_private_key" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Subscription is a registered browser push endpoint plus its encryption keys.
type Subscription struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	SiteID    uuid.UUID  `db:"site_id" json:"site_id"`
	Endpoint  string     `db:"endpoint" json:"endpoint"`
	P256dh    string     `db:"p256dh" json:"p256dh"`
	Auth      string     `db:"auth" json:"auth"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	LastSeen  *time.Time `db:"last_seen_at" json:"last_seen_at,omitempty"`
}

// Campaign is a single push-notification broadcast definition belonging to one site.
type Campaign struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SiteID       uuid.UUID `db:"site_id" json:"site_id"`
	Title        string    `db:"title" json:"title"`
	Body         string    `db:"body" json:"body"`
	URL          *string   `db:"url" json:"url,omitempty"`
	IconURL      *string   `db:"icon_url" json:"icon_url,omitempty"`
	ImageURL     *string   `db:"image_url" json:"image_url,omitempty"`
	DeliveryType string    `db:"delivery_type" json:"delivery_type"`
	Status       string    `db:"status" json:"status"`

	// ScheduledAt is the next (or only) fire time. Present iff the campaign
	// is scheduled or recurring.
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`

	// RecurringSchedule is present iff delivery_type is recurring.
	RecurringSchedule *RecurringSchedule `db:"recurring_schedule" json:"recurring_schedule,omitempty"`

	// SegmentID restricts targeting to a subscriber segment when set.
	SegmentID *uuid.UUID `db:"segment_id" json:"segment_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RecurringSchedule is the frequency/time rule governing repeated campaign
// fires, stored as JSONB on the campaign row. Missing sub-fields keep their
// zero values (hour=0, minute=0, day_of_week=0); day_of_month defaults are
// applied by the recurrence calculator.
type RecurringSchedule struct {
	Frequency     string     `json:"frequency"`
	Hour          int        `json:"hour"`
	Minute        int        `json:"minute"`
	DayOfWeek     int        `json:"day_of_week"`
	DayOfMonth    int        `json:"day_of_month"`
	IntervalValue int        `json:"interval_value"`
	IntervalUnit  string     `json:"interval_unit"`
	LastSent      *time.Time `json:"last_sent,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (r RecurringSchedule) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB retrieval
func (r *RecurringSchedule) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type for RecurringSchedule: %T", value)
	}
}

// Delivery is one attempted send of a campaign to one subscriber. The queued
// row is inserted before the push attempt so a crash mid-send leaves an
// auditable trace rather than silent loss.
type Delivery struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	CampaignID     uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	SubscriptionID uuid.UUID  `db:"subscription_id" json:"subscription_id"`
	Status         string     `db:"status" json:"status"`
	ErrorMessage   *string    `db:"error_message" json:"error_message,omitempty"`
	SentAt         *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	ClickedAt      *time.Time `db:"clicked_at" json:"clicked_at,omitempty"`
	ClosedAt       *time.Time `db:"closed_at" json:"closed_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Segment is a named subset of a site's subscribers used to restrict targeting.
type Segment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SiteID    uuid.UUID `db:"site_id" json:"site_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CampaignDailyStats is the per (campaign, date) delivery aggregate. Derived
// data; deliveries remain the source of truth.
type CampaignDailyStats struct {
	CampaignID       uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Date             time.Time `db:"date" json:"date"`
	SentCount        int       `db:"sent_count" json:"sent_count"`
	FailedCount      int       `db:"failed_count" json:"failed_count"`
	ClickedCount     int       `db:"clicked_count" json:"clicked_count"`
	UniqueClicks     int       `db:"unique_clicks" json:"unique_clicks"`
	ClickThroughRate float64   `db:"click_through_rate" json:"click_through_rate"`
}

// DeliveryDailyCounts holds the raw per-day counters the aggregator rolls up.
type DeliveryDailyCounts struct {
	SentCount    int `db:"sent_count"`
	FailedCount  int `db:"failed_count"`
	ClickedCount int `db:"clicked_count"`
	UniqueClicks int `db:"unique_clicks"`
}
