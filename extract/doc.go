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


// Package extract converts loosely structured faculty pages into canonical
// profile records.
//
// Source markup is inconsistent across pages from different systems and
// time periods, so each profile field is extracted by an ordered list of
// strategies; the first strategy that yields a non-empty value wins. A
// failing or non-matching strategy is logged and skipped, which keeps
// field failures independent: one missing marker never blanks the whole
// record, and extraction as a whole never fails.
//
// Extraction uses goquery CSS selectors over the parsed document tree.
// Fetching the page is the caller's concern (see the ingestion package).
package extract
