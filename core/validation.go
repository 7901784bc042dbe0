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


package core

import (
	"fmt"
	"time"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - URL must not be empty
//   - Timestamps must not be in the future
//
// NOT validated (sentinel defaults are legal values):
//   - Name, Department, Contact, Location, Summary may be NotAvailable
//   - Links and Publications may be empty
//   - ID (derived from URL by NewProfile)
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyURL)
	}

	if !IsValidTimestamp(profile.InsertedAt) || !IsValidTimestamp(profile.UpdatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrInvalidTimestamp)
	}

	return nil
}

// Normalize fills zero-value fields with their sentinel defaults so a
// Profile always satisfies the every-field-present invariant, even when
// constructed directly instead of through NewProfile.
func (p *Profile) Normalize() {
	if p.Id == 0 && p.URL != "" {
		p.Id = IDFromContent(p.URL)
	}
	if p.Name == "" {
		p.Name = NotAvailable
	}
	if p.Department == "" {
		p.Department = NotAvailable
	}
	if p.Contact == "" {
		p.Contact = NotAvailable
	}
	if p.Location == "" {
		p.Location = NotAvailable
	}
	if p.Summary == "" {
		p.Summary = NotAvailable
	}
	if p.Links == nil {
		p.Links = []string{}
	}
	if p.Publications == nil {
		p.Publications = []string{}
	}
}

// IsValidTimestamp reports whether a timestamp is usable, meaning zero or
// not in the future. A small clock-skew allowance is applied.
func IsValidTimestamp(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	return !t.After(time.Now().UTC().Add(time.Minute))
}
