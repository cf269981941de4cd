package metallum

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// BestMatch selects the hit which will be used out of all search candidates. At the
// moment this is always the first one as the catalog orders them by relevance. The
// candidates must not be empty.
func BestMatch(candidates []SearchHit) SearchHit {
	if len(candidates) > 1 {
		log.Warnf(
			"Ambiguous search: %d candidates, using %s - %s (%s)",
			len(candidates),
			candidates[0].Artist.Text,
			candidates[0].Release.Text,
			candidates[0].ReleaseType,
		)
	}

	return candidates[0]
}

// ParseLinkFragment parses a short HTML fragment which is expected to contain an
// anchor element and returns its destination and text.
func ParseLinkFragment(fragment string) (Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return Link{}, newStructureError("unparsable link fragment", fragment)
	}

	anchor := doc.Find("a").First()
	if anchor.Length() == 0 {
		return Link{}, newStructureError("no anchor element", fragment)
	}

	href, ok := anchor.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return Link{}, newStructureError("anchor without href attribute", fragment)
	}

	return Link{
		Href: strings.TrimSpace(href),
		Text: strings.TrimSpace(anchor.Text()),
	}, nil
}

// IDFromHref returns the last path segment of href. The catalog puts the numeric IDs
// of artists and releases there.
func IDFromHref(href string) string {
	return href[strings.LastIndex(href, "/")+1:]
}

// parseSearchRow converts a single search results row into a SearchHit. The row
// consists of the artist link, the release link and the release type in this order.
func parseSearchRow(row []string) (SearchHit, error) {
	if len(row) != 3 {
		return SearchHit{}, newStructureError(
			"search row does not have 3 columns",
			strings.Join(row, " | "),
		)
	}

	artist, err := ParseLinkFragment(row[0])
	if err != nil {
		return SearchHit{}, err
	}

	release, err := ParseLinkFragment(row[1])
	if err != nil {
		return SearchHit{}, err
	}

	return SearchHit{
		Artist:      artist,
		Release:     release,
		ReleaseType: strings.TrimSpace(row[2]),
	}, nil
}

// parseSearchRows parses all rows and returns the best of them.
func parseSearchRows(rows [][]string) (SearchHit, error) {
	if len(rows) == 0 {
		return SearchHit{}, ErrDataNotFound
	}

	hits := make([]SearchHit, 0, len(rows))
	for _, row := range rows {
		hit, err := parseSearchRow(row)
		if err != nil {
			return SearchHit{}, err
		}
		hits = append(hits, hit)
	}

	return BestMatch(hits), nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
