package ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/lectern/extract"
	"github.com/poiesic/lectern/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPageSource implements PageSource for testing
type testPageSource struct {
	pages      map[string]string // map from URL to HTML body
	fetchCount int
}

func (s *testPageSource) Fetch(ctx context.Context, pageURL string) (string, error) {
	s.fetchCount++
	if html, ok := s.pages[pageURL]; ok {
		return html, nil
	}
	return "", fmt.Errorf("%w: %s not found", ErrFetchFailed, pageURL)
}

func facultyPage(name, department string) string {
	return fmt.Sprintf(`<html><body>
		<h1>%s</h1>
		<p class="department-info">%s</p>
		<a href="mailto:%s@example.edu">email</a>
	</body></html>`, name, department, name)
}

func TestNewPipeline(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	source := &testPageSource{}
	extractor := extract.NewExtractor()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(profileRepo, source, extractor)
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(profileRepo, source, extractor, WithPoolSize(4))
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewPipeline(nil, source, extractor)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil page source", func(t *testing.T) {
		_, err := NewPipeline(profileRepo, nil, extractor)
		assert.Equal(t, ErrPageSourceRequired, err)
	})

	t.Run("nil extractor", func(t *testing.T) {
		_, err := NewPipeline(profileRepo, source, nil)
		assert.Equal(t, ErrExtractorRequired, err)
	})
}

func TestIngest(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	source := &testPageSource{
		pages: map[string]string{
			"https://example.edu/faculty/smith": facultyPage("smith", "Computer Science"),
			"https://example.edu/faculty/patel": facultyPage("patel", "Mathematics"),
		},
	}

	pipeline, err := NewPipeline(profileRepo, source, extract.NewExtractor())
	require.NoError(t, err)
	defer pipeline.Release()

	profiles, err := pipeline.Ingest(ctx,
		"https://example.edu/faculty/smith",
		"https://example.edu/faculty/patel",
	)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// URL order is preserved regardless of worker scheduling.
	assert.Equal(t, "https://example.edu/faculty/smith", profiles[0].URL)
	assert.Equal(t, "https://example.edu/faculty/patel", profiles[1].URL)
	assert.Equal(t, "smith", profiles[0].Name)
	assert.Equal(t, "Computer Science", profiles[0].Department)
	assert.Equal(t, "smith@example.edu", profiles[0].Contact)

	// Records are persisted and retrievable by URL.
	stored, err := profileRepo.GetProfileByURL(ctx, "https://example.edu/faculty/patel")
	require.NoError(t, err)
	assert.Equal(t, "patel", stored.Name)
	assert.Equal(t, "Mathematics", stored.Department)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIngest_FailedPageIsSkipped(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	source := &testPageSource{
		pages: map[string]string{
			"https://example.edu/faculty/smith": facultyPage("smith", "Computer Science"),
		},
	}

	pipeline, err := NewPipeline(profileRepo, source, extract.NewExtractor())
	require.NoError(t, err)
	defer pipeline.Release()

	// The middle URL cannot be fetched; the batch still succeeds with
	// the remaining page.
	profiles, err := pipeline.Ingest(ctx,
		"https://example.edu/faculty/missing",
		"https://example.edu/faculty/smith",
	)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "https://example.edu/faculty/smith", profiles[0].URL)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngest_EmptyBatch(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(profileRepo, &testPageSource{}, extract.NewExtractor())
	require.NoError(t, err)
	defer pipeline.Release()

	profiles, err := pipeline.Ingest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestIngest_AllPagesFail(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(profileRepo, &testPageSource{}, extract.NewExtractor())
	require.NoError(t, err)
	defer pipeline.Release()

	profiles, err := pipeline.Ingest(context.Background(),
		"https://example.edu/faculty/missing",
	)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	count, err := profileRepo.CountProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIngest_ReingestOverwrites(t *testing.T) {
	profileRepo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	defer func() {
		profileRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	url := "https://example.edu/faculty/smith"

	source := &testPageSource{
		pages: map[string]string{
			url: facultyPage("smith", "Computer Science"),
		},
	}

	pipeline, err := NewPipeline(profileRepo, source, extract.NewExtractor())
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.Ingest(ctx, url)
	require.NoError(t, err)

	// The page changed; scraping it again replaces the stored record.
	source.pages[url] = facultyPage("smith", "Data Science")
	_, err = pipeline.Ingest(ctx, url)
	require.NoError(t, err)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := profileRepo.GetProfileByURL(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "Data Science", stored.Department)
}

func TestHTTPPageSource_RejectsNonHTTPURL(t *testing.T) {
	source := NewHTTPPageSource(0)

	_, err := source.Fetch(context.Background(), "ftp://example.edu/page")
	assert.True(t, errors.Is(err, ErrFetchFailed))
}
