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


// Package ai provides abstractions for AI services used in lectern.
//
// This package defines the interface for language-model-backed query
// keyword expansion. It follows the dependency inversion principle,
// allowing the search pipeline to depend on abstractions rather than
// concrete implementations.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewKeywordExpander)
// return INTERFACE types to enforce abstraction and prevent accidental
// coupling to concrete implementations:
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockKeywordExpander) return CONCRETE
// types to enable test assertions and behavior injection:
//
//	mockExpander := mock.NewMockKeywordExpander()
//	mockExpander.ExpandQueryFunc = ...   // needs concrete type
//	count := mockExpander.CallCount()    // test assertion
//
// # Failure Classes
//
// Keyword expansion distinguishes two failure classes, surfaced as
// sentinel errors so callers can assert on which path was taken:
//
//   - ErrExternalService: transport or API failure, never retried
//   - ErrMalformedResponse: empty or unparseable completion, retried up
//     to a configured bound and then reported
//
// Both classes come with an empty keyword list; downstream stages treat
// "no keywords" as "no lexical signal", not as a fatal condition.
package ai
