package webserver

import (
	"net/http"

	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

// SearchHandler is a http.Handler which finds a release by artist and title.
type SearchHandler struct {
	backends Backends
}

// NewSearchHandler returns a new SearchHandler.
func NewSearchHandler(backends Backends) *SearchHandler {
	return &SearchHandler{
		backends: backends,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (sh *SearchHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	finder, err := sh.backends.finder(req)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	query := req.URL.Query()
	artist, title := query.Get("artist"), query.Get("title")
	if artist == "" && title == "" {
		writeError(writer, req, errBadRequest("artist or title is required"))
		return
	}

	hit, err := finder.Search(req.Context(), artist, title)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	artistID, releaseID := hit.ArtistID(), hit.ReleaseID()
	webutils.JSONResponse(writer, searchResponse{
		SearchHit: hit,
		ArtistID:  artistID,
		ReleaseID: releaseID,
		LogoURL:   finder.LogoURL(artistID),
		CoverURL:  finder.CoverURL(releaseID),
	})
}

type searchResponse struct {
	metallum.SearchHit

	ArtistID  string `json:"artist_id"`
	ReleaseID string `json:"release_id"`
	LogoURL   string `json:"logo_url"`
	CoverURL  string `json:"cover_url"`
}
