// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lectern

import (
	"log/slog"
	"time"

	"github.com/poiesic/lectern/ai"
	"github.com/poiesic/lectern/ai/openai"
	"github.com/poiesic/lectern/extract"
	"github.com/poiesic/lectern/ingestion"
	"github.com/poiesic/lectern/search"
	"github.com/poiesic/lectern/storage"
	"github.com/poiesic/lectern/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	profileRepo storage.ProfileRepository
	provider    ai.AIProvider
	logger      *slog.Logger

	fetchTimeout time.Duration
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig     *ai.Config
	fetchTimeout time.Duration
}

// WithAIConfig sets the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithFetchTimeout sets the per-request timeout for page fetching.
// Default is ingestion.DefaultFetchTimeout.
func WithFetchTimeout(timeout time.Duration) DatabaseOption {
	return func(o *databaseOptions) {
		o.fetchTimeout = timeout
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig:     ai.DefaultConfig(), // Default if not provided
		fetchTimeout: ingestion.DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create profile repository
	profileRepo, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		profileRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		profileRepo:  profileRepo,
		provider:     provider,
		logger:       slog.Default(),
		fetchTimeout: options.fetchTimeout,
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repository
	if err := db.profileRepo.Close(); err != nil {
		db.logger.Error("error closing profile repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profileRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	source := ingestion.NewHTTPPageSource(db.fetchTimeout)
	extractor := extract.NewExtractor()
	return ingestion.NewPipeline(db.profileRepo, source, extractor, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.profileRepo, db.provider, opts...)
}
