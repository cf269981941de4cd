package art

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	cca "gopkg.in/mineo/gocaa.v1"
)

// ErrImageNotFound is returned by FrontCover when no suitable cover image was
// found anywhere.
var ErrImageNotFound = errors.New("image not found")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Finder

// Finder defines a type which is capable of finding covers for releases.
type Finder interface {
	// FrontCover returns the front cover of `album` by `artist`.
	FrontCover(ctx context.Context, artist, album string) ([]byte, error)
}

// Client is a client for finding release covers in the Cover Art Archive. It
// automatically throttles itself so that it does not make too many requests to the
// MusicBrainz API. It is safe for concurrent use.
//
// Getting a cover works in two steps:
//
// * Gets a list of mbids (aka release IDs) from the MusicBrainz API which are above
// MinScore.
//
// * Uses the mbids for fetching the front image from the Cover Art Archive. The first
// release ID which has a front image wins.
//
// A single album usually has many releases in MusicBrainz for different years or
// countries. Generally all of them have the same cover so any of them is accepted.
//
// It implements Finder.
type Client struct {
	sync.Mutex

	// MinScore is the minimal accepted score above which a release is considered
	// a match for the search in the MusicBrainz API. Every match comes with a
	// "score" in 0-100 scale where 100 means absolutely sure.
	MinScore int

	delay      time.Duration
	delayer    *time.Timer
	useragent  string
	caaClient  CAAClient
	httpClient *http.Client

	musicBrainzAPIHost string
}

// NewClient returns fully configured Client.
//
// MusicBrainz asks all applications to identify themselves with a meaningful
// `useragent` and to make no more than one request per second. So no more than one
// request per `delay` will be made.
// More info: https://musicbrainz.org/doc/XML_Web_Service/Rate_Limiting
func NewClient(useragent string, delay time.Duration) *Client {
	return &Client{
		MinScore:           95,
		useragent:          useragent,
		delay:              delay,
		delayer:            time.NewTimer(delay),
		caaClient:          cca.NewCAAClient(useragent),
		httpClient:         http.DefaultClient,
		musicBrainzAPIHost: "https://musicbrainz.org",
	}
}

// SetCAAClient sets the underlying CAAClient which will be used by the Client.
func (c *Client) SetCAAClient(caac CAAClient) {
	c.caaClient = caac
}

// SetMusicBrainzAPIURL sets the MusicBrainz API URL.
func (c *Client) SetMusicBrainzAPIURL(apiURL string) {
	c.musicBrainzAPIHost = apiURL
}
