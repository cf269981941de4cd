package metallum

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	songTableSelector     = "table.table_lyrics"
	songTableBodySelector = songTableSelector + " > tbody"
)

// ParseSongList extracts the songs out of a release page. The page is expected to
// have exactly one song table. Only rows marked as "even" or "odd" are songs, the
// rest of them are hidden lyrics rows and totals.
func ParseSongList(pageHTML string) ([]SongEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, newStructureError("unparsable release page", pageHTML)
	}

	tbody := doc.Find(songTableBodySelector)
	if tbody.Length() != 1 {
		return nil, newStructureError("no single song table body", pageHTML)
	}

	var (
		songs   []SongEntry
		rowsErr error
	)

	tbody.ChildrenFiltered("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if !isSongRow(row) {
			return true
		}

		song, err := parseSongRow(row)
		if err != nil {
			rowsErr = err
			return false
		}

		songs = append(songs, song)
		return true
	})

	if rowsErr != nil {
		return nil, rowsErr
	}

	return songs, nil
}

func isSongRow(row *goquery.Selection) bool {
	return row.HasClass("even") || row.HasClass("odd")
}

func parseSongRow(row *goquery.Selection) (SongEntry, error) {
	cells := row.ChildrenFiltered("td")
	if cells.Length() < 3 {
		rowHTML, _ := goquery.OuterHtml(row)
		return SongEntry{}, newStructureError("song row with less than 3 cells", rowHTML)
	}

	id, ok := songRowID(row)
	if !ok {
		cellHTML, _ := goquery.OuterHtml(cells.First())
		return SongEntry{}, newStructureError(
			"no element with a name attribute in the first song cell",
			cellHTML,
		)
	}

	return SongEntry{
		ID:       id,
		Title:    collapseSpaces(cells.Eq(1).Text()),
		Duration: strings.TrimSpace(cells.Eq(2).Text()),
	}, nil
}

// songRowID returns the song ID stored in the name attribute of the first cell's
// child element.
func songRowID(row *goquery.Selection) (string, bool) {
	named := row.ChildrenFiltered("td").First().ChildrenFiltered("[name]").First()
	if named.Length() == 0 {
		return "", false
	}

	id, ok := named.Attr("name")
	id = strings.TrimSpace(id)
	return id, ok && id != ""
}
