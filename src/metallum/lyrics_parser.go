package metallum

import (
	"html"
	"strings"
)

// The separators between lyrics lines for the different sources of lyrics.
const (
	// BrowserLineSeparator separates lines in the text rendered by a browser.
	BrowserLineSeparator = "\n"

	// FragmentLineSeparator separates lines in the lyrics HTML fragment returned
	// by the lyrics endpoint.
	FragmentLineSeparator = "<br />"
)

// Payloads which the catalog uses in place of lyrics. They are compared verbatim
// after trimming.
const (
	notAvailableFragment = "<em>(lyrics not available)</em>"
	notAvailableText     = "(lyrics not available)"
	instrumentalText     = "(Instrumental)"
)

// ParseLyrics classifies a lyrics payload. Lyrics are split into lines on separator.
// Each line is trimmed and HTML entities in it are unescaped. Blank lines between
// stanzas are kept but a payload without a single non-blank line is not lyrics.
func ParseLyrics(payload, separator string) LyricsResult {
	payload = strings.TrimSpace(payload)

	switch payload {
	case "", notAvailableFragment, notAvailableText:
		return NotAvailableLyrics()
	case instrumentalText:
		return InstrumentalLyrics()
	}

	rawLines := strings.Split(payload, separator)
	lines := make([]string, 0, len(rawLines))
	blank := true
	for _, line := range rawLines {
		line = html.UnescapeString(strings.TrimSpace(line))
		if line != "" {
			blank = false
		}
		lines = append(lines, line)
	}

	// Only separators, nothing to read.
	if blank {
		return NotAvailableLyrics()
	}

	return AvailableLyrics(lines)
}
