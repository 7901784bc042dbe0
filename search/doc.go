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


// Package search provides multi-stage ranked search over profile records.
//
// The Searcher type implements a three-stage algorithm:
//   - Query expansion into topical keywords via an external language model
//   - Lexical ranking by keyword substring occurrence counts
//   - TF-IDF cosine-similarity ranking, which determines the returned order
//
// The lexical stage is computed and observable through logging and the
// SearchMonitor hooks, but the final result order comes from the TF-IDF
// stage alone. The TF-IDF vector space is rebuilt from the current record
// collection on every call, so results always reflect storage contents.
//
// The two slow stages (the model request and the vector-space build) run
// on a worker pool so that a process hosting many concurrent searches is
// not stalled by any single one.
package search
