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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// PageSource retrieves the raw HTML of a page.
type PageSource interface {
	// Fetch returns the page body for the given URL.
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// DefaultFetchTimeout is the per-request timeout for the HTTP page source.
const DefaultFetchTimeout = 30 * time.Second

// HTTPPageSource fetches pages over HTTP(S) with a per-request timeout.
type HTTPPageSource struct {
	client *http.Client
}

// NewHTTPPageSource creates an HTTP page source. A non-positive timeout
// falls back to DefaultFetchTimeout.
func NewHTTPPageSource(timeout time.Duration) *HTTPPageSource {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPPageSource{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves a page body. Non-2xx responses and transport failures
// are reported as ErrFetchFailed.
func (s *HTTPPageSource) Fetch(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL %q: %w", ErrFetchFailed, pageURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: URL %q must be http or https", ErrFetchFailed, pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; lectern/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %d %s", ErrFetchFailed, pageURL, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrFetchFailed, pageURL, err)
	}
	return string(body), nil
}
