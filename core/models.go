package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Profile IDs are derived from the source URL, so re-scraping a page
// produces the same ID and overwrites the previous record.
type ID uint64

// NotAvailable is the sentinel value for profile fields that could not
// be extracted from the source document.
const NotAvailable = "N/A"

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Profile is the canonical record produced by extracting one faculty page.
// Every field is always present: extraction failure degrades a field to
// NotAvailable (text fields) or an empty slice (Links, Publications),
// never to a missing value. A Profile is write-once; the ranking pipeline
// reads it but never mutates it.
type Profile struct {
	Id           ID
	URL          string // Source page URL, set at construction
	Name         string
	Department   string
	Contact      string // Email address, mailto: prefix stripped
	Location     string
	Summary      string
	Links        []string // Hyperlink targets in document order
	Publications []string // Publication texts in document order
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// NewProfile creates a Profile for the given source URL with every field
// set to its sentinel default. Extraction strategies fill in what they find.
func NewProfile(url string) *Profile {
	return &Profile{
		Id:           IDFromContent(url),
		URL:          url,
		Name:         NotAvailable,
		Department:   NotAvailable,
		Contact:      NotAvailable,
		Location:     NotAvailable,
		Summary:      NotAvailable,
		Links:        []string{},
		Publications: []string{},
	}
}

// FlattenedText returns the profile's full text content as a single string.
// Both rankers score against this representation.
func (p *Profile) FlattenedText() string {
	parts := make([]string, 0, 6+len(p.Links)+len(p.Publications))
	parts = append(parts, p.URL, p.Name, p.Department, p.Contact, p.Location, p.Summary)
	parts = append(parts, p.Links...)
	parts = append(parts, p.Publications...)
	return strings.Join(parts, " ")
}

// SearchResult represents a search result with the full profile and relevance score.
type SearchResult struct {
	Profile *Profile
	Score   float64
}
