package webserver

import (
	"net/http"

	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

// SongsHandler is a http.Handler which lists the songs of a release.
type SongsHandler struct {
	backends Backends
}

// NewSongsHandler returns a new SongsHandler.
func NewSongsHandler(backends Backends) *SongsHandler {
	return &SongsHandler{
		backends: backends,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (sh *SongsHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	releaseID, err := catalogID(req, "releaseID")
	if err != nil {
		writeError(writer, req, err)
		return
	}

	finder, err := sh.backends.finder(req)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	songs, err := finder.Songs(req.Context(), releaseID)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	if songs == nil {
		songs = []metallum.SongEntry{}
	}

	webutils.JSONResponse(writer, songsResponse{
		ReleaseID: releaseID,
		Songs:     songs,
	})
}

type songsResponse struct {
	ReleaseID string               `json:"release_id"`
	Songs     []metallum.SongEntry `json:"songs"`
}
