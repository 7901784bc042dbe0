package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/lectern/core"
	"github.com/poiesic/lectern/storage"
)

func TestProfileBasics(t *testing.T) {
	repo, backend, err := NewMemoryProfileRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	profile := core.NewProfile("https://example.edu/faculty/jsmith")
	profile.Name = "Jane Smith"
	profile.Department = "Computer Science"

	added, err := repo.AddProfiles(ctx, profile)
	if err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 profile, got %d", len(added))
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := repo.GetProfile(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.Name != "Jane Smith" {
		t.Fatalf("Expected 'Jane Smith', got '%s'", retrieved.Name)
	}

	byURL, err := repo.GetProfileByURL(ctx, "https://example.edu/faculty/jsmith")
	if err != nil {
		t.Fatalf("Failed to get profile by URL: %v", err)
	}
	if byURL.Id != added[0].Id {
		t.Fatalf("Expected ID %d, got %d", added[0].Id, byURL.Id)
	}
}

func TestAddProfiles_SameURLOverwrites(t *testing.T) {
	repo, backend, err := NewMemoryProfileRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	first := core.NewProfile("https://example.edu/faculty/jsmith")
	first.Name = "J. Smith"
	if _, err := repo.AddProfiles(ctx, first); err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}

	second := core.NewProfile("https://example.edu/faculty/jsmith")
	second.Name = "Jane Smith"
	if _, err := repo.AddProfiles(ctx, second); err != nil {
		t.Fatalf("Failed to re-add profile: %v", err)
	}

	count, err := repo.CountProfiles(ctx)
	if err != nil {
		t.Fatalf("Failed to count profiles: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 profile after overwrite, got %d", count)
	}

	retrieved, err := repo.GetProfileByURL(ctx, "https://example.edu/faculty/jsmith")
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.Name != "Jane Smith" {
		t.Fatalf("Expected overwritten name, got '%s'", retrieved.Name)
	}
	if !retrieved.InsertedAt.Equal(first.InsertedAt) {
		t.Fatal("Expected InsertedAt to be preserved on overwrite")
	}
}

func TestGetProfiles_DeterministicOrder(t *testing.T) {
	repo, backend, err := NewMemoryProfileRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	urls := []string{
		"https://example.edu/faculty/a",
		"https://example.edu/faculty/b",
		"https://example.edu/faculty/c",
		"https://example.edu/faculty/d",
	}
	for _, url := range urls {
		if _, err := repo.AddProfiles(ctx, core.NewProfile(url)); err != nil {
			t.Fatalf("Failed to add profile: %v", err)
		}
	}

	first, err := repo.GetProfiles(ctx)
	if err != nil {
		t.Fatalf("Failed to get profiles: %v", err)
	}
	if len(first) != len(urls) {
		t.Fatalf("Expected %d profiles, got %d", len(urls), len(first))
	}

	second, err := repo.GetProfiles(ctx)
	if err != nil {
		t.Fatalf("Failed to get profiles: %v", err)
	}
	for i := range first {
		if first[i].Id != second[i].Id {
			t.Fatalf("Collection order changed between calls at index %d", i)
		}
	}
}

func TestDeleteProfiles(t *testing.T) {
	repo, backend, err := NewMemoryProfileRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	profile := core.NewProfile("https://example.edu/faculty/jsmith")
	if _, err := repo.AddProfiles(ctx, profile); err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}

	if err := repo.DeleteProfiles(ctx, profile.Id); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}

	_, err = repo.GetProfile(ctx, profile.Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if err := repo.DeleteProfiles(ctx, profile.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestGetProfiles_Empty(t *testing.T) {
	repo, backend, err := NewMemoryProfileRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	profiles, err := repo.GetProfiles(context.Background())
	if err != nil {
		t.Fatalf("Failed to get profiles: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("Expected empty collection, got %d", len(profiles))
	}
}
