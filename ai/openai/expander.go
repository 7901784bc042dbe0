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


package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/lectern/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// keywordSystemPrompt instructs the model to expand a query into topical
// keywords. The comma-separated format is what ExpandQuery parses.
const keywordSystemPrompt = "Understand the topic of the query and generate 50 relevant keywords in a comma-separated list."

// KeywordExpander implements ai.KeywordExpander using OpenAI-compatible chat APIs.
type KeywordExpander struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newKeywordExpander is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newKeywordExpander(config *ai.Config) (*KeywordExpander, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat completion
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return newKeywordExpanderWithClient(client, config), nil
}

// newKeywordExpanderWithClient wires an existing model client. Tests use
// this to exercise the retry policy without a live endpoint.
func newKeywordExpanderWithClient(client llms.Model, config *ai.Config) *KeywordExpander {
	return &KeywordExpander{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-expander"),
	}
}

// NewKeywordExpander creates a new keyword expander using the provided configuration.
//
// Returns ai.KeywordExpander interface to enforce abstraction.
func NewKeywordExpander(config *ai.Config) (ai.KeywordExpander, error) {
	return newKeywordExpander(config)
}

// ExpandQuery expands a query into topical keywords using an LLM.
//
// Malformed or empty completions are retried in a counted loop; the
// expander issues at most MaxRetries+1 requests per query, then gives up
// with ai.ErrMalformedResponse. Transport errors abort immediately with
// ai.ErrExternalService and are not retried. Each request runs under the
// configured deadline. In every failure case the returned slice is empty
// but non-nil, a valid no-signal input for the ranking pipeline.
func (e *KeywordExpander) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(keywordSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	for attempt := 0; attempt <= e.config.MaxRetries; attempt++ {
		response, err := e.generate(ctx, content)
		if err != nil {
			e.logger.Error("keyword expansion request failed", "query", query, "err", err)
			return []string{}, fmt.Errorf("%w: %w", ai.ErrExternalService, err)
		}

		if len(response.Choices) < 1 || response.Choices[0].Content == "" {
			e.logger.Warn("empty completion from model", "query", query, "attempt", attempt+1)
			continue
		}

		keywords := splitKeywords(response.Choices[0].Content)
		if len(keywords) == 0 {
			e.logger.Warn("no keywords parsed from completion",
				"query", query,
				"attempt", attempt+1,
				"completion", response.Choices[0].Content)
			continue
		}

		return keywords, nil
	}

	e.logger.Error("keyword expansion exhausted retries", "query", query, "attempts", e.config.MaxRetries+1)
	return []string{}, fmt.Errorf("%w: no usable completion after %d attempts",
		ai.ErrMalformedResponse, e.config.MaxRetries+1)
}

// generate issues one model request under the configured deadline.
func (e *KeywordExpander) generate(ctx context.Context, content []llms.MessageContent) (*llms.ContentResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.config.RequestTimeout)
	defer cancel()

	return e.client.GenerateContent(callCtx, content,
		llms.WithSeed(e.config.Seed),
		llms.WithTemperature(e.config.Temperature),
		llms.WithMaxTokens(e.config.MaxTokens),
		llms.WithTopP(e.config.TopP),
		llms.WithFrequencyPenalty(e.config.FrequencyPenalty),
		llms.WithPresencePenalty(e.config.PresencePenalty),
	)
}
