package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lectern/core"
	"github.com/poiesic/lectern/extract"
	"github.com/poiesic/lectern/storage"
)

// Pipeline orchestrates fetching, extracting, and storing faculty profiles.
// Pages are processed concurrently on a worker pool.
type Pipeline struct {
	profileRepository storage.ProfileRepository
	pageSource        PageSource
	extractor         *extract.Extractor
	pool              *ants.Pool
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent page processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	profileRepository storage.ProfileRepository,
	pageSource PageSource,
	extractor *extract.Extractor,
	opts ...Option,
) (*Pipeline, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if pageSource == nil {
		return nil, ErrPageSourceRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profileRepository: profileRepository,
		pageSource:        pageSource,
		extractor:         extractor,
		pool:              pool,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest fetches, extracts, and stores a profile for each URL.
// Pages are processed independently: a page that cannot be fetched or
// parsed is logged and skipped, and the rest of the batch continues.
// Returns the stored profiles in the order of the URLs that succeeded.
// An error is returned only when storage itself fails.
func (p *Pipeline) Ingest(ctx context.Context, urls ...string) ([]*core.Profile, error) {
	if len(urls) == 0 {
		return []*core.Profile{}, nil
	}

	extracted := make([]*core.Profile, len(urls))

	var wg sync.WaitGroup
	for i, pageURL := range urls {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			extracted[i] = p.processPage(ctx, pageURL)
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("error submitting page to worker pool", "url", pageURL, "err", submitErr)
		}
	}
	wg.Wait()

	// Compact out the failed pages, keeping URL order.
	profiles := make([]*core.Profile, 0, len(extracted))
	for _, profile := range extracted {
		if profile != nil {
			profiles = append(profiles, profile)
		}
	}

	if len(profiles) == 0 {
		return []*core.Profile{}, nil
	}

	added, err := p.profileRepository.AddProfiles(ctx, profiles...)
	if err != nil {
		p.logger.Error("error storing profiles", "count", len(profiles), "err", err)
		return nil, err
	}

	p.logger.Info("ingested profiles", "requested", len(urls), "stored", len(added))
	return added, nil
}

// processPage fetches and extracts one page, returning nil on failure.
func (p *Pipeline) processPage(ctx context.Context, pageURL string) *core.Profile {
	html, err := p.pageSource.Fetch(ctx, pageURL)
	if err != nil {
		p.logger.Error("error fetching page", "url", pageURL, "err", err)
		return nil
	}

	profile, err := p.extractor.ExtractHTML(pageURL, html)
	if err != nil {
		p.logger.Error("error extracting profile", "url", pageURL, "err", err)
		return nil
	}
	return profile
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
