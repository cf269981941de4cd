package webserver

import (
	"net/http"

	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

// LyricsHandler is a http.Handler which returns the lyrics of a song.
type LyricsHandler struct {
	backends Backends
}

// NewLyricsHandler returns a new LyricsHandler.
func NewLyricsHandler(backends Backends) *LyricsHandler {
	return &LyricsHandler{
		backends: backends,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (lh *LyricsHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	releaseID, err := catalogID(req, "releaseID")
	if err != nil {
		writeError(writer, req, err)
		return
	}

	songID, err := catalogID(req, "songID")
	if err != nil {
		writeError(writer, req, err)
		return
	}

	finder, err := lh.backends.finder(req)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	lyrics, err := finder.Lyrics(req.Context(), releaseID, songID)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	lines := lyrics.Lines()
	if lines == nil {
		lines = []string{}
	}

	webutils.JSONResponse(writer, lyricsResponse{
		SongID: songID,
		Status: lyrics.Kind().String(),
		Lines:  lines,
	})
}

type lyricsResponse struct {
	SongID string   `json:"song_id"`
	Status string   `json:"status"`
	Lines  []string `json:"lines"`
}
