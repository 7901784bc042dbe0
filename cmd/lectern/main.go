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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/lectern"
	"github.com/poiesic/lectern/ai"
	"github.com/poiesic/lectern/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lectern",
		Usage: "Faculty profile scraper and search engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "scrape",
				Usage:     "Fetch faculty pages and store extracted profiles",
				ArgsUsage: "URL [URL ...]",
				Action:    scrapeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "fetch-timeout",
						Usage: "Per-page HTTP timeout",
						Value: 30 * time.Second,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of pages fetched concurrently",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search stored profiles for a query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "model-host",
						Usage: "Chat completion service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Model used for keyword expansion",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "API token for the chat completion service",
						Value: "none",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scrapeCommand(c *cli.Context) error {
	ctx := context.Background()

	urls := c.Args().Slice()
	if len(urls) == 0 {
		return fmt.Errorf("at least one URL is required")
	}

	db, err := lectern.NewDatabase(c.String("db"),
		lectern.WithFetchTimeout(c.Duration("fetch-timeout")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(pipelineOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	profiles, err := pipeline.Ingest(ctx, urls...)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored %d of %d profiles\n", len(profiles), len(urls))
	for _, profile := range profiles {
		fmt.Printf("%s\t%s\t%s\n", profile.URL, profile.Name, profile.Department)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("model-host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := lectern.NewDatabase(c.String("db"), lectern.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	results, err := searcher.Search(ctx, query, c.Int("top"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No matching profiles")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%2d. %.4f  %s\n", i+1, result.Score, result.Profile.Name)
		fmt.Printf("    %s\n", result.Profile.URL)
		if result.Profile.Department != "" {
			fmt.Printf("    %s\n", result.Profile.Department)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func pipelineOptions(c *cli.Context) []ingestion.Option {
	var opts []ingestion.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, ingestion.WithPoolSize(workers))
	}
	return opts
}
