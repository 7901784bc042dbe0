package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/poiesic/lectern/core"
)

// Per-field strategy chains. Order matters: the first strategy yielding a
// non-empty value wins. Selectors track the markers used by the faculty
// page systems the scraper has encountered.
var (
	nameStrategies = []textStrategy{
		{name: "banner-parts", fn: concatByIDs([]string{"bannername", "titlepart1", "titlepart2", "titlepart3"}, " ")},
		{name: "heading", fn: selectorText("h1")},
		{name: "profile-name-class", fn: selectorText(".profile-name")},
	}

	departmentStrategies = []textStrategy{
		{name: "title-parts", fn: concatByIDs([]string{"titlepart4", "titlepart5"}, ", ")},
		{name: "department-info-class", fn: selectorText(".department-info")},
	}

	contactStrategies = []textStrategy{
		{name: "mailto-link", fn: mailtoAddress()},
		{name: "contact-email-class", fn: selectorText(".contact-email")},
	}

	locationStrategies = []textStrategy{
		{name: "location-parts", fn: concatByIDs([]string{"ot3", "ot5", "ot6"}, ", ")},
		{name: "location-info-class", fn: selectorText(".location-info")},
	}

	summaryStrategies = []textStrategy{
		{name: "custom-content", fn: joinedText("#customContent p")},
		{name: "summary-text-class", fn: selectorText(".summary-text")},
	}

	linkStrategies = []listStrategy{
		{name: "link-list", fn: hrefList("ul.linklist a")},
		{name: "affiliations", fn: hrefList(".affiliations a")},
	}

	publicationStrategies = []listStrategy{
		{name: "latest-pubs", fn: textList("#latestPubsContainer .latestPubListing p")},
		{name: "publications-listing", fn: textList(".publications-listing p")},
	}
)

// Extractor converts parsed faculty pages into profile records.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates a new profile extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces a profile record from a parsed document. It never fails
// as a whole: a field whose strategies all fail or miss keeps its sentinel
// default, and the failure is logged without affecting other fields.
func (e *Extractor) Extract(url string, doc *goquery.Document) *core.Profile {
	profile := core.NewProfile(url)

	profile.Name = e.extractText(doc, url, "name", nameStrategies, profile.Name)
	profile.Department = e.extractText(doc, url, "department", departmentStrategies, profile.Department)
	profile.Contact = e.extractText(doc, url, "contact", contactStrategies, profile.Contact)
	profile.Location = e.extractText(doc, url, "location", locationStrategies, profile.Location)
	profile.Summary = e.extractText(doc, url, "summary", summaryStrategies, profile.Summary)
	profile.Links = e.extractList(doc, url, "links", linkStrategies)
	profile.Publications = e.extractList(doc, url, "publications", publicationStrategies)

	return profile
}

// ExtractHTML parses raw HTML and extracts a profile record.
// Returns ErrUnparsableDocument only if the source cannot be parsed at all.
func (e *Extractor) ExtractHTML(url, html string) (*core.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableDocument, err)
	}
	return e.Extract(url, doc), nil
}

// extractText applies a text strategy chain, returning fallback if no
// strategy yields a non-empty value.
func (e *Extractor) extractText(doc *goquery.Document, url, field string, chain []textStrategy, fallback string) string {
	for _, strategy := range chain {
		value, err := strategy.fn(doc)
		if err != nil {
			e.logger.Warn("extraction strategy failed",
				"url", url,
				"field", field,
				"strategy", strategy.name,
				"err", fmt.Errorf("%w: %w", ErrStrategyFailed, err))
			continue
		}
		if value != "" {
			return value
		}
	}
	e.logger.Debug("no extraction strategy matched", "url", url, "field", field)
	return fallback
}

// extractList applies a list strategy chain, returning an empty slice if
// no strategy yields any values.
func (e *Extractor) extractList(doc *goquery.Document, url, field string, chain []listStrategy) []string {
	for _, strategy := range chain {
		values, err := strategy.fn(doc)
		if err != nil {
			e.logger.Warn("extraction strategy failed",
				"url", url,
				"field", field,
				"strategy", strategy.name,
				"err", fmt.Errorf("%w: %w", ErrStrategyFailed, err))
			continue
		}
		if len(values) > 0 {
			return values
		}
	}
	e.logger.Debug("no extraction strategy matched", "url", url, "field", field)
	return []string{}
}
