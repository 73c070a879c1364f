package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateSiteParams represents parameters for creating a site
type CreateSiteParams struct {
	Name            string
	ContactEmail    string
	VAPIDPublicKey  string
	VAPIDPrivateKey string
}

const sqlCreateSite = `
INSERT INTO sites (name, contact_email, vapid_public_key, vapid_private_key)
VALUES ($1, $2, $3, $4)
RETURNING id, name, contact_email, vapid_public_key, vapid_private_key, created_at, updated_at
`

// CreateSite creates a new site with its VAPID credential pair
func (s *Store) CreateSite(ctx context.Context, params CreateSiteParams) (Site, error) {
	var site Site
	err := s.db.GetContext(ctx, &site, sqlCreateSite,
		params.Name,
		params.ContactEmail,
		params.VAPIDPublicKey,
		params.VAPIDPrivateKey)
	if err != nil {
		s.logger.Error(ctx, "failed to create site", err)
		return Site{}, fmt.Errorf("failed to create site: %w", err)
	}
	return site, nil
}

const sqlGetSiteByID = `
SELECT id, name, contact_email, vapid_public_key, vapid_private_key, created_at, updated_at
FROM sites
WHERE id = $1
`

// GetSiteByID retrieves a site by ID
func (s *Store) GetSiteByID(ctx context.Context, siteID uuid.UUID) (Site, error) {
	var site Site
	err := s.db.GetContext(ctx, &site, sqlGetSiteByID, siteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Site{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get site by id", err)
		return Site{}, fmt.Errorf("failed to get site by id: %w", err)
	}
	return site, nil
}
