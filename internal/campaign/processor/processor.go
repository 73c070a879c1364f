package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"push-server/internal/dispatch"
	"push-server/internal/observability"
	"push-server/internal/scheduler"
	"push-server/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetSiteByID(ctx context.Context, siteID uuid.UUID) (store.Site, error)
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, siteID uuid.UUID) ([]store.Campaign, error)
	UpdateCampaignStatusIfCurrent(ctx context.Context, campaignID uuid.UUID, expected, next string) (bool, error)
	GetDeliveriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Delivery, error)
}

// CampaignScheduler is the scheduling surface the processor delegates to.
// Satisfied by *scheduler.Scheduler.
type CampaignScheduler interface {
	ScheduleAt(ctx context.Context, campaignID uuid.UUID, at time.Time) error
	Activate(ctx context.Context, campaignID uuid.UUID) error
	Pause(ctx context.Context, campaignID uuid.UUID) (bool, error)
	Cancel(ctx context.Context, campaignID uuid.UUID) (bool, error)
	Rearm(ctx context.Context, campaignID uuid.UUID, firedAt time.Time, success bool) error
	NextFire(campaignID uuid.UUID) (time.Time, bool)
	Status() scheduler.Status
}

// DispatchExecutor runs the fan-out for a claimed campaign. Satisfied by
// *dispatch.Executor.
type DispatchExecutor interface {
	Execute(ctx context.Context, campaignID uuid.UUID) (dispatch.Result, error)
}

// StatsProvider reads campaign daily aggregates. Satisfied by
// *stats.Aggregator.
type StatsProvider interface {
	Daily(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignDailyStats, error)
}

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrSiteNotFound       = errors.New("site not found")
	ErrInvalidRecurrence  = errors.New("invalid recurring schedule")
	ErrScheduleRequired   = errors.New("recurring campaigns require a schedule rule")
	ErrAlreadyDispatched  = errors.New("campaign has already been dispatched")
	ErrNotDispatchable    = errors.New("campaign cannot be dispatched in its current state")
	ErrCampaignNotPending = errors.New("campaign is not pending")
)

type CampaignProcessor struct {
	store     CampaignStore
	scheduler CampaignScheduler
	executor  DispatchExecutor
	stats     StatsProvider
	logger    *observability.Logger
}

func New(
	store CampaignStore,
	scheduler CampaignScheduler,
	executor DispatchExecutor,
	stats StatsProvider,
	logger *observability.Logger,
) CampaignProcessor {
	return CampaignProcessor{
		store:     store,
		scheduler: scheduler,
		executor:  executor,
		stats:     stats,
		logger:    logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Title             string
	Body              string
	URL               *string
	IconURL           *string
	ImageURL          *string
	DeliveryType      string
	ScheduledAt       *time.Time
	RecurringSchedule *store.RecurringSchedule
	SegmentID         *uuid.UUID
}

// CampaignView is a campaign plus the scheduler's view of its next fire.
type CampaignView struct {
	store.Campaign
	NextFire *time.Time `json:"next_fire,omitempty"`
}

// Create validates and persists a campaign, arming it when the request
// carries enough to arm it: a scheduled campaign with a fire time is armed on
// the spot, and a recurring campaign is activated from its rule. Anything
// else stays in draft for an explicit schedule or dispatch call.
func (p *CampaignProcessor) Create(ctx context.Context, siteID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	if _, err := p.store.GetSiteByID(ctx, siteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrSiteNotFound
		}
		return store.Campaign{}, err
	}

	switch params.DeliveryType {
	case store.DeliveryTypeImmediate, store.DeliveryTypeScheduled:
		if params.RecurringSchedule != nil {
			return store.Campaign{}, fmt.Errorf("%w: rule only valid on recurring campaigns", ErrInvalidRecurrence)
		}
	case store.DeliveryTypeRecurring:
		if params.RecurringSchedule == nil {
			return store.Campaign{}, ErrScheduleRequired
		}
		if err := validateRecurringSchedule(*params.RecurringSchedule); err != nil {
			return store.Campaign{}, err
		}
	default:
		return store.Campaign{}, fmt.Errorf("%w: unknown delivery type %q", ErrNotDispatchable, params.DeliveryType)
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		SiteID:            siteID,
		Title:             params.Title,
		Body:              params.Body,
		URL:               params.URL,
		IconURL:           params.IconURL,
		ImageURL:          params.ImageURL,
		DeliveryType:      params.DeliveryType,
		Status:            store.CampaignStatusDraft,
		RecurringSchedule: params.RecurringSchedule,
		SegmentID:         params.SegmentID,
	})
	if err != nil {
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "delivery_type", Value: campaign.DeliveryType},
	)
	p.logger.Info(ctx, "campaign created")

	switch {
	case campaign.DeliveryType == store.DeliveryTypeScheduled && params.ScheduledAt != nil:
		if err := p.scheduler.ScheduleAt(ctx, campaign.ID, *params.ScheduledAt); err != nil {
			return store.Campaign{}, err
		}
	case campaign.DeliveryType == store.DeliveryTypeRecurring:
		if err := p.scheduler.Activate(ctx, campaign.ID); err != nil {
			return store.Campaign{}, err
		}
	default:
		return campaign, nil
	}

	return p.store.GetCampaignByID(ctx, campaign.ID)
}

// Get returns one campaign. Campaigns belonging to other sites read as not
// found so tenants cannot probe each other's IDs.
func (p *CampaignProcessor) Get(ctx context.Context, siteID, campaignID uuid.UUID) (CampaignView, error) {
	campaign, err := p.ownedCampaign(ctx, siteID, campaignID)
	if err != nil {
		return CampaignView{}, err
	}

	view := CampaignView{Campaign: campaign}
	if next, ok := p.scheduler.NextFire(campaignID); ok {
		view.NextFire = &next
	} else if campaign.ScheduledAt != nil && campaign.ScheduledAt.After(time.Now()) {
		view.NextFire = campaign.ScheduledAt
	}
	return view, nil
}

// List returns a site's campaigns, newest first.
func (p *CampaignProcessor) List(ctx context.Context, siteID uuid.UUID) ([]store.Campaign, error) {
	return p.store.ListCampaigns(ctx, siteID)
}

// DispatchNow claims a campaign and runs the fan-out synchronously. The claim
// is the same compare-and-swap the scheduler uses, so an operator cannot
// double-send a campaign a poller is already sending.
func (p *CampaignProcessor) DispatchNow(ctx context.Context, siteID, campaignID uuid.UUID) (dispatch.Result, error) {
	campaign, err := p.ownedCampaign(ctx, siteID, campaignID)
	if err != nil {
		return dispatch.Result{}, err
	}

	if !store.CanTransitionCampaignStatus(campaign.DeliveryType, campaign.Status, store.CampaignStatusSending) {
		if campaign.Status == store.CampaignStatusSending {
			return dispatch.Result{}, ErrAlreadyDispatched
		}
		return dispatch.Result{}, fmt.Errorf("%w: %s campaign in status %s", ErrNotDispatchable, campaign.DeliveryType, campaign.Status)
	}

	claimed, err := p.store.UpdateCampaignStatusIfCurrent(ctx, campaignID, campaign.Status, store.CampaignStatusSending)
	if err != nil {
		return dispatch.Result{}, err
	}
	if !claimed {
		return dispatch.Result{}, ErrAlreadyDispatched
	}

	result, execErr := p.executor.Execute(ctx, campaignID)

	if campaign.DeliveryType == store.DeliveryTypeRecurring {
		// The executor leaves recurring campaigns holding the sending claim;
		// without a re-arm here a manual dispatch would stop the cadence.
		if rearmErr := p.scheduler.Rearm(ctx, campaignID, time.Now(), execErr == nil); rearmErr != nil {
			p.logger.Error(ctx, "failed to rearm recurring campaign after manual dispatch", rearmErr)
		}
	} else if execErr != nil {
		// A one-shot the executor could not even load would otherwise stay in
		// sending forever. No-op when the executor already marked it failed.
		if _, casErr := p.store.UpdateCampaignStatusIfCurrent(ctx, campaignID,
			store.CampaignStatusSending, store.CampaignStatusFailed); casErr != nil {
			p.logger.Error(ctx, "failed to mark campaign failed", casErr)
		}
	}

	return result, execErr
}

// Schedule arms a scheduled campaign for the given fire time.
func (p *CampaignProcessor) Schedule(ctx context.Context, siteID, campaignID uuid.UUID, at time.Time) (store.Campaign, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return store.Campaign{}, err
	}
	if err := p.scheduler.ScheduleAt(ctx, campaignID, at); err != nil {
		return store.Campaign{}, err
	}
	return p.store.GetCampaignByID(ctx, campaignID)
}

// Pause stops an active recurring campaign.
func (p *CampaignProcessor) Pause(ctx context.Context, siteID, campaignID uuid.UUID) (store.Campaign, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return store.Campaign{}, err
	}
	paused, err := p.scheduler.Pause(ctx, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if !paused {
		return store.Campaign{}, ErrCampaignNotPending
	}
	return p.store.GetCampaignByID(ctx, campaignID)
}

// Resume reactivates a stopped recurring campaign.
func (p *CampaignProcessor) Resume(ctx context.Context, siteID, campaignID uuid.UUID) (store.Campaign, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return store.Campaign{}, err
	}
	if err := p.scheduler.Activate(ctx, campaignID); err != nil {
		return store.Campaign{}, err
	}
	return p.store.GetCampaignByID(ctx, campaignID)
}

// Cancel revokes a pending campaign before it fires.
func (p *CampaignProcessor) Cancel(ctx context.Context, siteID, campaignID uuid.UUID) (store.Campaign, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return store.Campaign{}, err
	}
	cancelled, err := p.scheduler.Cancel(ctx, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if !cancelled {
		return store.Campaign{}, ErrCampaignNotPending
	}
	return p.store.GetCampaignByID(ctx, campaignID)
}

// Stats returns a campaign's daily delivery aggregates.
func (p *CampaignProcessor) Stats(ctx context.Context, siteID, campaignID uuid.UUID) ([]store.CampaignDailyStats, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return nil, err
	}
	return p.stats.Daily(ctx, campaignID)
}

// SchedulerStatus reports the scheduler's poll-loop state and armed campaigns.
func (p *CampaignProcessor) SchedulerStatus() scheduler.Status {
	return p.scheduler.Status()
}

// Deliveries returns every delivery row for a campaign.
func (p *CampaignProcessor) Deliveries(ctx context.Context, siteID, campaignID uuid.UUID) ([]store.Delivery, error) {
	if _, err := p.ownedCampaign(ctx, siteID, campaignID); err != nil {
		return nil, err
	}
	return p.store.GetDeliveriesByCampaign(ctx, campaignID)
}

func (p *CampaignProcessor) ownedCampaign(ctx context.Context, siteID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, err
	}
	if campaign.SiteID != siteID {
		return store.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

func validateRecurringSchedule(rule store.RecurringSchedule) error {
	if rule.Hour < 0 || rule.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidRecurrence, rule.Hour)
	}
	if rule.Minute < 0 || rule.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidRecurrence, rule.Minute)
	}

	switch rule.Frequency {
	case store.FrequencyDaily:
	case store.FrequencyWeekly:
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("%w: day_of_week %d out of range", ErrInvalidRecurrence, rule.DayOfWeek)
		}
	case store.FrequencyMonthly:
		if rule.DayOfMonth < 1 || rule.DayOfMonth > 31 {
			return fmt.Errorf("%w: day_of_month %d out of range", ErrInvalidRecurrence, rule.DayOfMonth)
		}
	case store.FrequencyInterval:
		if rule.IntervalValue < 1 {
			return fmt.Errorf("%w: interval_value must be positive", ErrInvalidRecurrence)
		}
		switch rule.IntervalUnit {
		case store.IntervalUnitMinutes, store.IntervalUnitHours, store.IntervalUnitDays:
		default:
			return fmt.Errorf("%w: unknown interval_unit %q", ErrInvalidRecurrence, rule.IntervalUnit)
		}
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrence, rule.Frequency)
	}
	return nil
}
