package webserver_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/grimoire/src/metallum"
)

// TestLyricsHandler checks all kinds of lyrics results are represented in the
// response.
func TestLyricsHandler(t *testing.T) {
	tests := []struct {
		desc     string
		lyrics   metallum.LyricsResult
		expected string
	}{
		{
			desc:     "available",
			lyrics:   metallum.AvailableLyrics([]string{"Death is near", "", "Human extermination"}),
			expected: `{"song_id": "4721", "status": "available", "lines": ["Death is near", "", "Human extermination"]}`,
		},
		{
			desc:     "instrumental",
			lyrics:   metallum.InstrumentalLyrics(),
			expected: `{"song_id": "4721", "status": "instrumental", "lines": []}`,
		},
		{
			desc:     "not available",
			lyrics:   metallum.NotAvailableLyrics(),
			expected: `{"song_id": "4721", "status": "not_available", "lines": []}`,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			tb := newTestBackends()
			tb.api.LyricsReturns(test.lyrics, nil)

			resp := do(t, tb.backends(), http.MethodGet,
				"/v1/release/73550/song/4721/lyrics", "")
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			assert.JSONEq(t, test.expected, resp.Body.String())

			_, releaseID, songID := tb.api.LyricsArgsForCall(0)
			assert.Equal(t, "73550", releaseID)
			assert.Equal(t, "4721", songID)
		})
	}
}

func TestLyricsHandlerErrors(t *testing.T) {
	tb := newTestBackends()
	tb.browser.LyricsReturns(
		metallum.LyricsResult{},
		fmt.Errorf("song 9: %w", metallum.ErrDataNotFound),
	)

	resp := do(t, tb.backends(), http.MethodGet,
		"/v1/release/73550/song/9/lyrics?strategy=browser", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(t, tb.backends(), http.MethodGet, "/v1/release/73550/song/x/lyrics", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, tb.api.LyricsCallCount())
}
