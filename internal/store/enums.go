package store

// Campaign delivery type ENUMs
const (
	DeliveryTypeImmediate = "immediate"
	DeliveryTypeScheduled = "scheduled"
	DeliveryTypeRecurring = "recurring"
)

// Campaign status ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusSending   = "sending"
	CampaignStatusCompleted = "completed"
	CampaignStatusFailed    = "failed"
	CampaignStatusStopped   = "stopped"
	CampaignStatusCancelled = "cancelled"
)

// Delivery status ENUMs
const (
	DeliveryStatusQueued  = "queued"
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
	DeliveryStatusClicked = "clicked"
)

// Recurring schedule frequency ENUMs
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyMonthly  = "monthly"
	FrequencyInterval = "interval"
)

// Interval unit ENUMs
const (
	IntervalUnitMinutes = "minutes"
	IntervalUnitHours   = "hours"
	IntervalUnitDays    = "days"
)
