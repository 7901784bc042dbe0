package storage

import (
	"context"

	"github.com/poiesic/lectern/core"
)

// ProfileRepository provides operations for managing scraped profiles.
// Implementations must be thread-safe and support concurrent access.
type ProfileRepository interface {
	// AddProfiles stores one or more profiles.
	// Profile IDs are content-addressed from the URL, so adding a profile
	// for a URL that already exists overwrites the stored record.
	// Sets InsertedAt on first write and UpdatedAt on every write.
	// Returns the profiles with timestamps populated.
	AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfileByURL retrieves a single profile by its source URL.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfileByURL(ctx context.Context, url string) (*core.Profile, error)

	// GetProfiles returns the full current collection of profiles.
	// Ordering is deterministic (ascending key order) across calls as
	// long as the collection does not change.
	GetProfiles(ctx context.Context) ([]*core.Profile, error)

	// DeleteProfiles removes profiles by their IDs.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
