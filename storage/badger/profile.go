package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lectern/core"
	"github.com/poiesic/lectern/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
//
// Returns storage.ProfileRepository interface to enforce abstraction.
func NewProfileRepository(backend *Backend) (storage.ProfileRepository, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &ProfileRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the caller
// and closed separately.
func (r *ProfileRepository) Close() error {
	return nil
}

// WithTransaction executes a function within a transaction.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// AddProfiles stores one or more profiles. IDs are content-addressed from
// the URL, so re-adding a URL overwrites the stored record while keeping
// its original InsertedAt.
func (r *ProfileRepository) AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, profile := range profiles {
			profile.Normalize()
			if err := core.ValidateProfile(profile); err != nil {
				return err
			}

			key := makeProfileKey(profile.Id)

			now := time.Now().UTC()
			existing, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				profile.InsertedAt = existing.InsertedAt
			} else {
				profile.InsertedAt = now
			}
			profile.UpdatedAt = now

			value := storage.MarshalProfile(profile)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProfileByURL retrieves a single profile by its source URL.
// URLs are content-addressed, so this is a direct key lookup.
func (r *ProfileRepository) GetProfileByURL(ctx context.Context, url string) (*core.Profile, error) {
	return r.GetProfile(ctx, core.IDFromContent(url))
}

// GetProfiles returns the full current collection in ascending key order.
func (r *ProfileRepository) GetProfiles(ctx context.Context) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = profileScanPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profile *core.Profile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			if profile != nil {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteProfiles removes profiles by their IDs.
func (r *ProfileRepository) DeleteProfiles(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProfileKey(id)
			profile, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}
			if profile == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = profileScanPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readProfile reads and unmarshals a profile, returning nil if the key is absent.
func (r *ProfileRepository) readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var profile *core.Profile
	err = item.Value(func(val []byte) error {
		var err error
		profile, err = storage.UnmarshalProfile(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
