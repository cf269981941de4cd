package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointSearch       = "/v1/search"
	APIv1EndpointSongs        = "/v1/release/{releaseID}/songs"
	APIv1EndpointLyrics       = "/v1/release/{releaseID}/song/{songID}/lyrics"
	APIv1EndpointArtistLogo   = "/v1/artist/{artistID}/logo"
	APIv1EndpointLogoURL      = "/v1/artist/{artistID}/logo/url"
	APIv1EndpointReleaseCover = "/v1/release/{releaseID}/cover"
	APIv1EndpointCoverURL     = "/v1/release/{releaseID}/cover/url"
	APIv1EndpointCookie       = "/v1/browser/cookie"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods = map[string][]string{
	APIv1EndpointSearch:       {http.MethodGet},
	APIv1EndpointSongs:        {http.MethodGet},
	APIv1EndpointLyrics:       {http.MethodGet},
	APIv1EndpointArtistLogo:   {http.MethodGet},
	APIv1EndpointLogoURL:      {http.MethodGet},
	APIv1EndpointReleaseCover: {http.MethodGet},
	APIv1EndpointCoverURL:     {http.MethodGet},
	APIv1EndpointCookie:       {http.MethodPut},
}
