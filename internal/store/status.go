package store

import (
	"errors"
	"fmt"
)

var ErrInvalidStatusTransition = errors.New("invalid campaign status transition")

// campaignTransitions is the exhaustive per-delivery-type transition table.
// A transition absent from the table is rejected; status strings never move
// outside this machine.
var campaignTransitions = map[string]map[string][]string{
	DeliveryTypeImmediate: {
		CampaignStatusDraft:   {CampaignStatusSending},
		CampaignStatusSending: {CampaignStatusCompleted, CampaignStatusFailed},
	},
	DeliveryTypeScheduled: {
		CampaignStatusDraft:     {CampaignStatusScheduled, CampaignStatusSending},
		CampaignStatusScheduled: {CampaignStatusScheduled, CampaignStatusSending, CampaignStatusCancelled},
		CampaignStatusSending:   {CampaignStatusCompleted, CampaignStatusFailed},
	},
	DeliveryTypeRecurring: {
		CampaignStatusDraft:  {CampaignStatusActive},
		CampaignStatusActive: {CampaignStatusSending, CampaignStatusStopped, CampaignStatusCancelled},
		// A recurring campaign re-enters active after each fire.
		CampaignStatusSending: {CampaignStatusActive, CampaignStatusFailed},
		CampaignStatusStopped: {CampaignStatusActive},
	},
}

// CanTransitionCampaignStatus reports whether the transition from one status
// to another is allowed for the given delivery type.
func CanTransitionCampaignStatus(deliveryType, from, to string) bool {
	allowed, ok := campaignTransitions[deliveryType]
	if !ok {
		return false
	}
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateCampaignStatusTransition returns ErrInvalidStatusTransition when the
// transition is not in the table.
func ValidateCampaignStatusTransition(deliveryType, from, to string) error {
	if !CanTransitionCampaignStatus(deliveryType, from, to) {
		return fmt.Errorf("%w: %s campaign %s -> %s", ErrInvalidStatusTransition, deliveryType, from, to)
	}
	return nil
}

// PendingStatusForDeliveryType returns the status in which a campaign of the
// given delivery type is eligible for scheduler pickup.
func PendingStatusForDeliveryType(deliveryType string) string {
	if deliveryType == DeliveryTypeRecurring {
		return CampaignStatusActive
	}
	return CampaignStatusScheduled
}
