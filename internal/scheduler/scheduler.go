// Package scheduler drives time-based campaign dispatch. The database is the
// source of truth for what is due; this process only polls it and claims work,
// so any number of instances can run the same loop without double-sending.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"push-server/internal/dispatch"
	"push-server/internal/observability"
	"push-server/internal/schedule"
	"push-server/internal/store"
)

// ErrNotSchedulable means the campaign's delivery type or current status does
// not admit the requested scheduling operation.
var ErrNotSchedulable = errors.New("campaign cannot be scheduled in its current state")

// SchedulerStore defines the database operations required by the Scheduler
type SchedulerStore interface {
	GetDueCampaigns(ctx context.Context, before time.Time, limit int) ([]store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	UpdateCampaignStatusIfCurrent(ctx context.Context, campaignID uuid.UUID, expected, next string) (bool, error)
	ScheduleCampaignAt(ctx context.Context, campaignID uuid.UUID, at time.Time) error
	RearmRecurringCampaign(ctx context.Context, campaignID uuid.UUID, nextFire time.Time, lastSent *time.Time) error
}

// Executor runs the fan-out for a claimed campaign. Satisfied by
// *dispatch.Executor.
type Executor interface {
	Execute(ctx context.Context, campaignID uuid.UUID) (dispatch.Result, error)
}

// Scheduler polls for due campaigns, claims them with a compare-and-swap
// status update and hands them to the executor. Claiming before any other work
// is what makes concurrent instances safe: only the instance that wins the
// swap dispatches, everyone else sees zero rows affected and moves on.
type Scheduler struct {
	store        SchedulerStore
	executor     Executor
	logger       *observability.Logger
	pollInterval time.Duration
	pollLimit    int
	stopOnce     sync.Once
	stopChan     chan struct{}
	inFlight     sync.WaitGroup

	// nextFires is an advisory cache of known fire times for status reads.
	// It is never consulted to decide dispatch; the poll query is.
	mu        sync.Mutex
	running   bool
	nextFires map[uuid.UUID]time.Time
}

// Status is a point-in-time snapshot of the scheduler for introspection.
type Status struct {
	Running      bool        `json:"running"`
	PendingCount int         `json:"pending_count"`
	PendingIDs   []uuid.UUID `json:"pending_ids"`
}

func New(
	store SchedulerStore,
	executor Executor,
	logger *observability.Logger,
	pollInterval time.Duration,
	pollLimit int,
) *Scheduler {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	if pollLimit <= 0 {
		pollLimit = 50
	}
	return &Scheduler{
		store:        store,
		executor:     executor,
		logger:       logger,
		pollInterval: pollInterval,
		pollLimit:    pollLimit,
		stopChan:     make(chan struct{}),
		nextFires:    make(map[uuid.UUID]time.Time),
	}
}

// Start begins the poll loop and blocks until the context is cancelled or
// Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info(ctx, fmt.Sprintf("Starting campaign scheduler with %v poll interval", s.pollInterval))

	s.setRunning(true)
	defer s.setRunning(false)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// Run immediately on start so campaigns due during downtime fire without
	// waiting a full interval.
	s.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Campaign scheduler stopping: context cancelled")
			return
		case <-s.stopChan:
			s.logger.Info(ctx, "Campaign scheduler stopping: stop signal received")
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

// Stop signals the scheduler to stop and waits for in-flight dispatches.
// Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.inFlight.Wait()
}

// poll claims and dispatches every due campaign, sequentially. Fan-out
// concurrency lives inside the executor; running campaigns one at a time here
// keeps a single instance from multiplying its own load.
func (s *Scheduler) poll(ctx context.Context) {
	s.inFlight.Add(1)
	defer s.inFlight.Done()

	campaigns, err := s.store.GetDueCampaigns(ctx, time.Now(), s.pollLimit)
	if err != nil {
		s.logger.Error(ctx, "Failed to get due campaigns", err)
		return
	}

	if len(campaigns) == 0 {
		return
	}

	s.logger.Info(ctx, fmt.Sprintf("Found %d campaigns due for dispatch", len(campaigns)))

	for _, campaign := range campaigns {
		select {
		case <-s.stopChan:
			return
		default:
		}
		s.fire(ctx, campaign)
	}
}

// fire claims one due campaign and runs it. A lost claim means another
// instance (or an operator action) got there first and is not an error.
func (s *Scheduler) fire(ctx context.Context, campaign store.Campaign) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "delivery_type", Value: campaign.DeliveryType},
	)

	pending := store.PendingStatusForDeliveryType(campaign.DeliveryType)
	claimed, err := s.store.UpdateCampaignStatusIfCurrent(ctx, campaign.ID, pending, store.CampaignStatusSending)
	if err != nil {
		s.logger.Error(ctx, "Failed to claim campaign", err)
		return
	}
	if !claimed {
		s.logger.Info(ctx, "Campaign already claimed, skipping")
		return
	}

	firedAt := time.Now()
	if campaign.ScheduledAt != nil {
		firedAt = *campaign.ScheduledAt
	}

	result, execErr := s.executor.Execute(ctx, campaign.ID)
	if execErr != nil {
		s.logger.Error(ctx, "Campaign dispatch failed", execErr)
	} else {
		s.logger.Info(ctx, fmt.Sprintf("Dispatched campaign: %d sent, %d failed", result.SentCount, result.FailedCount))
	}

	if campaign.DeliveryType == store.DeliveryTypeRecurring {
		// Recurring campaigns always come back for another round; a failed
		// round just re-arms without advancing last_sent.
		s.rearm(ctx, campaign, firedAt, execErr == nil)
		return
	}

	if execErr != nil {
		// The executor marks failures it reaches, but an error before it can
		// load the campaign leaves the row holding the sending claim with no
		// way out. The swap is a no-op when the executor already moved it.
		if _, casErr := s.store.UpdateCampaignStatusIfCurrent(ctx, campaign.ID,
			store.CampaignStatusSending, store.CampaignStatusFailed); casErr != nil {
			s.logger.Error(ctx, "Failed to mark campaign failed", casErr)
		}
	}

	s.forgetNextFire(campaign.ID)
}

// rearm computes the next fire for a recurring campaign and writes it back.
// The reference is the fire time just served, so slow polls do not push the
// cadence later and later.
func (s *Scheduler) rearm(ctx context.Context, campaign store.Campaign, firedAt time.Time, advanceLastSent bool) {
	if campaign.RecurringSchedule == nil {
		err := fmt.Errorf("recurring campaign %s has no schedule rule", campaign.ID)
		s.logger.Error(ctx, "Cannot rearm campaign", err)
		if _, casErr := s.store.UpdateCampaignStatusIfCurrent(ctx, campaign.ID,
			store.CampaignStatusSending, store.CampaignStatusFailed); casErr != nil {
			s.logger.Error(ctx, "Failed to mark campaign failed", casErr)
		}
		return
	}

	rule := *campaign.RecurringSchedule
	var lastSent *time.Time
	if advanceLastSent {
		lastSent = &firedAt
		rule.LastSent = &firedAt
	}

	now := time.Now()
	next := schedule.NextFireTime(rule, firedAt)
	if !next.After(now) {
		// More than one period elapsed, likely downtime. Resume the cadence
		// from now instead of replaying the backlog.
		catchup := rule
		catchup.LastSent = &now
		next = schedule.NextFireTime(catchup, now)
	}

	if err := s.store.RearmRecurringCampaign(ctx, campaign.ID, next, lastSent); err != nil {
		s.logger.Error(ctx, "Failed to rearm recurring campaign", err)
		return
	}
	s.rememberNextFire(campaign.ID, next)

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "next_fire", Value: next.Format(time.RFC3339)},
	), "Rearmed recurring campaign")
}

// Rearm schedules the next round for a recurring campaign after an
// out-of-band dispatch, such as an operator firing it by hand. The caller
// must hold the sending claim; the campaign returns to active with its next
// fire computed from firedAt.
func (s *Scheduler) Rearm(ctx context.Context, campaignID uuid.UUID, firedAt time.Time, success bool) error {
	campaign, err := s.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.DeliveryType != store.DeliveryTypeRecurring {
		return fmt.Errorf("%w: not a recurring campaign", ErrNotSchedulable)
	}
	s.rearm(ctx, campaign, firedAt, success)
	return nil
}

// ScheduleAt arms a one-shot scheduled campaign for the given time. A time at
// or before now is accepted and dispatched on the spot.
func (s *Scheduler) ScheduleAt(ctx context.Context, campaignID uuid.UUID, at time.Time) error {
	campaign, err := s.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.DeliveryType != store.DeliveryTypeScheduled {
		return fmt.Errorf("%w: delivery type is %s", ErrNotSchedulable, campaign.DeliveryType)
	}
	if !store.CanTransitionCampaignStatus(campaign.DeliveryType, campaign.Status, store.CampaignStatusScheduled) {
		return fmt.Errorf("%w: status is %s", ErrNotSchedulable, campaign.Status)
	}

	if err := s.store.ScheduleCampaignAt(ctx, campaignID, at); err != nil {
		return err
	}
	s.rememberNextFire(campaignID, at)

	if !at.After(time.Now()) {
		campaign.Status = store.CampaignStatusScheduled
		campaign.ScheduledAt = &at
		s.inFlight.Add(1)
		go func(ctx context.Context) {
			defer s.inFlight.Done()
			s.fire(ctx, campaign)
		}(context.WithoutCancel(ctx))
	}
	return nil
}

// Activate arms a recurring campaign from draft or stopped. The first fire is
// computed cold, from now.
func (s *Scheduler) Activate(ctx context.Context, campaignID uuid.UUID) error {
	campaign, err := s.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.DeliveryType != store.DeliveryTypeRecurring || campaign.RecurringSchedule == nil {
		return fmt.Errorf("%w: not a recurring campaign", ErrNotSchedulable)
	}
	if !store.CanTransitionCampaignStatus(campaign.DeliveryType, campaign.Status, store.CampaignStatusActive) {
		return fmt.Errorf("%w: status is %s", ErrNotSchedulable, campaign.Status)
	}

	next := schedule.NextFireTime(*campaign.RecurringSchedule, time.Now())
	if err := s.store.RearmRecurringCampaign(ctx, campaignID, next, nil); err != nil {
		return err
	}
	s.rememberNextFire(campaignID, next)
	return nil
}

// Pause moves an active recurring campaign to stopped. Returns false when the
// campaign was not active, which includes losing the race with a dispatch
// that is already underway.
func (s *Scheduler) Pause(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	stopped, err := s.store.UpdateCampaignStatusIfCurrent(ctx, campaignID,
		store.CampaignStatusActive, store.CampaignStatusStopped)
	if err != nil {
		return false, err
	}
	if stopped {
		s.forgetNextFire(campaignID)
	}
	return stopped, nil
}

// Cancel revokes a pending campaign before it fires. Returns false when the
// campaign had already left its pending status; a dispatch in progress is
// never interrupted.
func (s *Scheduler) Cancel(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	for _, pending := range []string{store.CampaignStatusScheduled, store.CampaignStatusActive} {
		cancelled, err := s.store.UpdateCampaignStatusIfCurrent(ctx, campaignID, pending, store.CampaignStatusCancelled)
		if err != nil {
			return false, err
		}
		if cancelled {
			s.forgetNextFire(campaignID)
			return true, nil
		}
	}
	return false, nil
}

// Status reports whether the poll loop is running and which campaigns this
// instance knows are armed. Other instances may know about more.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.nextFires))
	for id := range s.nextFires {
		ids = append(ids, id)
	}
	return Status{
		Running:      s.running,
		PendingCount: len(ids),
		PendingIDs:   ids,
	}
}

func (s *Scheduler) setRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

// NextFire reports the cached next fire time for a campaign, when known.
func (s *Scheduler) NextFire(campaignID uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.nextFires[campaignID]
	return at, ok
}

func (s *Scheduler) rememberNextFire(campaignID uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextFires[campaignID] = at
}

func (s *Scheduler) forgetNextFire(campaignID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nextFires, campaignID)
}
