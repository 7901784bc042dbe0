package search

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lectern/ai"
	"github.com/poiesic/lectern/core"
	"github.com/poiesic/lectern/storage"
)

// Searcher provides multi-stage ranked search over profile records.
type Searcher struct {
	profileRepository storage.ProfileRepository
	expander          ai.KeywordExpander
	pool              *ants.Pool
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for the slow search stages.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	profileRepository storage.ProfileRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		profileRepository: profileRepository,
		expander:          provider.KeywordExpander(),
		pool:              pool,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Search returns the topN profiles ranked for the query.
// Within one call the stages run strictly in sequence: keyword expansion
// completes before lexical scoring begins, and lexical scoring completes
// before TF-IDF scoring begins. The returned order comes from the TF-IDF
// stage alone; the lexical ranking is computed for observability.
func (s *Searcher) Search(ctx context.Context, query string, topN int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, topN, nil)
}

// SearchWithMonitor runs Search with monitoring callbacks at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topN int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	s.logger.Info("searching", "query", query, "topN", topN)

	// 1. Expand the query into keywords. Expansion failures are absorbed:
	// an empty keyword list just means no lexical signal.
	keywords, err := s.expandKeywords(ctx, query)
	if err != nil {
		return nil, err
	}
	s.logger.Info("expanded query", "query", query, "keywordCount", len(keywords))
	monitor.AfterKeywordExpansion(keywords)

	// 2. Fetch the full current collection.
	profiles, err := s.profileRepository.GetProfiles(ctx)
	if err != nil {
		s.logger.Error("error retrieving profiles", "err", err)
		return nil, err
	}
	s.logger.Info("retrieved profiles", "count", len(profiles))
	monitor.AfterProfileRetrieval(profiles)

	if len(profiles) == 0 {
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	// 3. Lexical ranking. Observable but not returned: the TF-IDF stage
	// below determines the final order.
	lexical := rankByKeywords(profiles, keywords, s.logger)
	if len(lexical) > 0 {
		s.logger.Info("lexical ranking complete", "best", lexical[0].URL)
	}
	monitor.AfterLexicalRanking(lexical)

	// 4. TF-IDF ranking over the same collection snapshot.
	results, err := s.rankBySimilarity(ctx, profiles, query, topN)
	if err != nil {
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}

// Release releases the worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// expandKeywords runs keyword expansion on the worker pool so the caller
// can interleave other searches while the model request is in flight.
// Expansion errors degrade to an empty keyword list; only pool or context
// failures propagate.
func (s *Searcher) expandKeywords(ctx context.Context, query string) ([]string, error) {
	var (
		keywords  []string
		expandErr error
	)
	if err := s.submitAndWait(ctx, func() {
		keywords, expandErr = s.expander.ExpandQuery(ctx, query)
	}); err != nil {
		return nil, err
	}
	if expandErr != nil {
		s.logger.Error("keyword expansion failed, continuing without keywords",
			"query", query, "err", expandErr)
		return []string{}, nil
	}
	if keywords == nil {
		keywords = []string{}
	}
	return keywords, nil
}

// rankBySimilarity runs the CPU-bound TF-IDF stage on the worker pool.
func (s *Searcher) rankBySimilarity(ctx context.Context, profiles []*core.Profile, query string, topN int) ([]*core.SearchResult, error) {
	var results []*core.SearchResult
	if err := s.submitAndWait(ctx, func() {
		results = RankBySimilarity(profiles, query, topN)
	}); err != nil {
		return nil, err
	}
	return results, nil
}

// submitAndWait schedules task on the pool and blocks until it finishes
// or the context is cancelled.
func (s *Searcher) submitAndWait(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	if err := s.pool.Submit(func() {
		defer close(done)
		task()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
