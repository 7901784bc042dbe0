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


package mock

import "github.com/poiesic/lectern/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	expander *MockKeywordExpander
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockExpander() to access the concrete type for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		expander: NewMockKeywordExpander(),
	}
}

// NewMockProviderWithExpander creates a mock provider with a custom mock expander.
// This allows full control over the expansion behavior.
func NewMockProviderWithExpander(expander *MockKeywordExpander) ai.AIProvider {
	return &MockProvider{
		expander: expander,
	}
}

// KeywordExpander returns the mock expander.
func (p *MockProvider) KeywordExpander() ai.KeywordExpander {
	return p.expander
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockExpander returns the underlying mock expander for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockExpander() *MockKeywordExpander {
	return p.expander
}
