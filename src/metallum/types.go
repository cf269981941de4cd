package metallum

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Finder

// Finder defines a type which is capable of finding catalog metadata for releases
// on the Metal Archives.
type Finder interface {
	// Search returns the best search hit for a release by an artist.
	Search(ctx context.Context, artist, title string) (SearchHit, error)

	// Songs returns the songs of a release in track order.
	Songs(ctx context.Context, releaseID string) ([]SongEntry, error)

	// Lyrics returns the lyrics of a song from a release. Not every implementation
	// needs the releaseID.
	Lyrics(ctx context.Context, releaseID, songID string) (LyricsResult, error)

	// LogoURL returns the absolute URL of an artist's logo.
	LogoURL(artistID string) string

	// CoverURL returns the absolute URL of a release's cover.
	CoverURL(releaseID string) string
}

// Link is a hyperlink found in the catalog's pages.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// SearchHit is one candidate match for an artist and release title search.
type SearchHit struct {
	Artist      Link   `json:"artist"`
	Release     Link   `json:"release"`
	ReleaseType string `json:"release_type"`
}

// ArtistID returns the catalog ID of the hit's artist.
func (h SearchHit) ArtistID() string {
	return IDFromHref(h.Artist.Href)
}

// ReleaseID returns the catalog ID of the hit's release.
func (h SearchHit) ReleaseID() string {
	return IDFromHref(h.Release.Href)
}

// SongEntry is a single row from a release's song table.
type SongEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// LyricsKind tells which of the possible states a LyricsResult is in.
type LyricsKind int

// The possible states of a LyricsResult.
const (
	LyricsNotAvailable LyricsKind = iota
	LyricsAvailable
	LyricsInstrumental
)

// String implements fmt.Stringer.
func (k LyricsKind) String() string {
	switch k {
	case LyricsAvailable:
		return "available"
	case LyricsInstrumental:
		return "instrumental"
	default:
		return "not_available"
	}
}

// LyricsResult is the lyrics of a single song. Only results of kind LyricsAvailable
// have lines and they always have at least one. Its zero value is a "not available"
// result.
type LyricsResult struct {
	kind  LyricsKind
	lines []string
}

// AvailableLyrics returns a result with the lyrics lines. An empty lines slice
// produces a "not available" result instead.
func AvailableLyrics(lines []string) LyricsResult {
	if len(lines) == 0 {
		return NotAvailableLyrics()
	}

	linesCopy := make([]string, len(lines))
	copy(linesCopy, lines)

	return LyricsResult{
		kind:  LyricsAvailable,
		lines: linesCopy,
	}
}

// NotAvailableLyrics returns a result for a song which has no lyrics in the catalog.
func NotAvailableLyrics() LyricsResult {
	return LyricsResult{kind: LyricsNotAvailable}
}

// InstrumentalLyrics returns a result for an instrumental song.
func InstrumentalLyrics() LyricsResult {
	return LyricsResult{kind: LyricsInstrumental}
}

// Kind returns which state the result is in.
func (l LyricsResult) Kind() LyricsKind {
	return l.kind
}

// Lines returns a copy of the lyrics lines in their original order.
func (l LyricsResult) Lines() []string {
	if len(l.lines) == 0 {
		return nil
	}

	linesCopy := make([]string, len(l.lines))
	copy(linesCopy, l.lines)
	return linesCopy
}
