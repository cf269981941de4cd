package webserver

import (
	"net/http"

	"github.com/ironsmile/grimoire/src/art"
	"github.com/ironsmile/grimoire/src/metallum"
)

// The strategies which a client could choose with the "strategy" query parameter.
const (
	StrategyAPI     = "api"
	StrategyBrowser = "browser"
)

// Backends are all the things the HTTP handlers use for finding data.
type Backends struct {
	// API is the finder which uses the catalog's AJAX endpoints. It is the
	// default strategy and is required.
	API metallum.Finder

	// Browser is the finder which drives a browser. Nil when the browser is
	// disabled.
	Browser metallum.Finder

	// Cookies receives anti-bot cookie updates for Browser. Nil when the browser
	// is disabled.
	Cookies CookieHolder

	// Images downloads logos and covers from the catalog.
	Images ImageFetcher

	// Thumbnails shrinks images for "size=small" requests.
	Thumbnails Thumbnailer

	// Covers looks for covers outside of the catalog. Nil disables the fallback.
	Covers art.Finder

	// ThumbnailWidth is the width in pixels of small images.
	ThumbnailWidth int
}

// finder returns the metallum.Finder for the strategy chosen by the request.
func (b Backends) finder(req *http.Request) (metallum.Finder, error) {
	switch strategy := req.URL.Query().Get("strategy"); strategy {
	case "", StrategyAPI:
		return b.API, nil
	case StrategyBrowser:
		if b.Browser == nil {
			return nil, errBadRequest("browser strategy is not enabled")
		}
		return b.Browser, nil
	default:
		return nil, errBadRequest("unknown strategy `" + strategy + "`")
	}
}
