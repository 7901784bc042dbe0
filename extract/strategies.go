package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textStrategy extracts a single text value from a document.
// An empty result with a nil error means the strategy did not match;
// the chain moves on to the next strategy.
type textStrategy struct {
	name string
	fn   func(doc *goquery.Document) (string, error)
}

// listStrategy extracts an ordered list of values from a document.
type listStrategy struct {
	name string
	fn   func(doc *goquery.Document) ([]string, error)
}

// concatByIDs returns the trimmed text of each present id-tagged region,
// joined by sep, in the given order. Absent regions are skipped.
func concatByIDs(ids []string, sep string) func(doc *goquery.Document) (string, error) {
	return func(doc *goquery.Document) (string, error) {
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			sel := doc.Find("#" + id)
			if sel.Length() == 0 {
				continue
			}
			if text := strings.TrimSpace(sel.First().Text()); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, sep), nil
	}
}

// selectorText returns the trimmed text of the first element matching selector.
func selectorText(selector string) func(doc *goquery.Document) (string, error) {
	return func(doc *goquery.Document) (string, error) {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			return "", nil
		}
		return strings.TrimSpace(sel.First().Text()), nil
	}
}

// joinedText returns the trimmed text of every element matching selector,
// joined by single spaces.
func joinedText(selector string) func(doc *goquery.Document) (string, error) {
	return func(doc *goquery.Document) (string, error) {
		var parts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		return strings.Join(parts, " "), nil
	}
}

// mailtoAddress returns the target of the first mail link with the
// mailto: scheme prefix stripped.
func mailtoAddress() func(doc *goquery.Document) (string, error) {
	return func(doc *goquery.Document) (string, error) {
		sel := doc.Find(`a[href^="mailto:"]`)
		if sel.Length() == 0 {
			return "", nil
		}
		href, ok := sel.First().Attr("href")
		if !ok {
			return "", nil
		}
		return strings.TrimSpace(strings.TrimPrefix(href, "mailto:")), nil
	}
}

// hrefList returns the href of every element matching selector, in
// document order. Elements without an href are skipped.
func hrefList(selector string) func(doc *goquery.Document) ([]string, error) {
	return func(doc *goquery.Document) ([]string, error) {
		var hrefs []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok && href != "" {
				hrefs = append(hrefs, href)
			}
		})
		return hrefs, nil
	}
}

// textList returns the trimmed text of every element matching selector,
// in document order.
func textList(selector string) func(doc *goquery.Document) ([]string, error) {
	return func(doc *goquery.Document) ([]string, error) {
		var texts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				texts = append(texts, text)
			}
		})
		return texts, nil
	}
}
