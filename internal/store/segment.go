package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlCreateSegment = `
INSERT INTO segments (site_id, name)
VALUES ($1, $2)
RETURNING id, site_id, name, created_at
`

// CreateSegment creates a named subscriber segment for a site
func (s *Store) CreateSegment(ctx context.Context, siteID uuid.UUID, name string) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlCreateSegment, siteID, name)
	if err != nil {
		s.logger.Error(ctx, "failed to create segment", err)
		return Segment{}, fmt.Errorf("failed to create segment: %w", err)
	}
	return segment, nil
}

const sqlGetSegmentByID = `
SELECT id, site_id, name, created_at FROM segments WHERE id = $1
`

// GetSegmentByID retrieves a segment by ID
func (s *Store) GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (Segment, error) {
	var segment Segment
	err := s.db.GetContext(ctx, &segment, sqlGetSegmentByID, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get segment by id", err)
		return Segment{}, fmt.Errorf("failed to get segment by id: %w", err)
	}
	return segment, nil
}

const sqlAddSegmentMember = `
INSERT INTO segment_members (segment_id, subscription_id)
VALUES ($1, $2)
ON CONFLICT (segment_id, subscription_id) DO NOTHING
`

// AddSegmentMember adds a subscription to a segment, idempotently
func (s *Store) AddSegmentMember(ctx context.Context, segmentID, subscriptionID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlAddSegmentMember, segmentID, subscriptionID)
	if err != nil {
		s.logger.Error(ctx, "failed to add segment member", err)
		return fmt.Errorf("failed to add segment member: %w", err)
	}
	return nil
}

const sqlRemoveSegmentMember = `
DELETE FROM segment_members WHERE segment_id = $1 AND subscription_id = $2
`

// RemoveSegmentMember removes a subscription from a segment
func (s *Store) RemoveSegmentMember(ctx context.Context, segmentID, subscriptionID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlRemoveSegmentMember, segmentID, subscriptionID)
	if err != nil {
		s.logger.Error(ctx, "failed to remove segment member", err)
		return fmt.Errorf("failed to remove segment member: %w", err)
	}
	return nil
}
