// Package store persists registry state: badges, the ownership index, the
// issuance counter, and the metadata base URI.
//
// Implementations own the atomicity of Mint: the not-yet-minted check, the id
// allocation, and the insert commit together or not at all. Callers never see
// a half-applied mint, and a rejected mint leaves the counter untouched.
package store

import (
	"context"
	"time"

	"merit/internal/badge/models"
	id "merit/pkg/domain"
)

// Store is the registry persistence contract.
//
// Implementations return pkg/platform/sentinel errors for infrastructure
// facts (ErrNotFound, ErrAlreadyUsed); the service translates them into
// rejection codes.
type Store interface {
	// Mint atomically allocates the next badge id and records ownership.
	// Returns sentinel.ErrAlreadyUsed when the owner already holds a badge.
	// Issued ids are contiguous starting at 1; a failed mint consumes no id.
	Mint(ctx context.Context, owner id.Account, score uint, issuedAt time.Time) (*models.Badge, error)

	// FindByID returns the badge with the given id, or sentinel.ErrNotFound
	// if that id was never issued.
	FindByID(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error)

	// FindByOwner returns the badge owned by the account, or
	// sentinel.ErrNotFound if the account never minted.
	FindByOwner(ctx context.Context, owner id.Account) (*models.Badge, error)

	// Has reports whether the account holds a badge. Never errors on absence.
	Has(ctx context.Context, owner id.Account) (bool, error)

	// UpdateScore overwrites the score of an issued badge. Returns
	// sentinel.ErrNotFound if the id was never issued.
	UpdateScore(ctx context.Context, badgeID id.BadgeID, score uint) error

	// Total returns the number of badges ever issued (the issuance counter).
	Total(ctx context.Context) (uint64, error)

	// BaseURI returns the metadata base URI, empty when unset.
	BaseURI(ctx context.Context) (string, error)

	// SetBaseURI unconditionally overwrites the metadata base URI.
	SetBaseURI(ctx context.Context, uri string) error
}
