package metallum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	apiSearchEndpoint = "%s/search/ajax-advanced/searching/albums"
	apiLyricsEndpoint = "%s/release/ajax-view-lyrics/id/%s"

	// releaseEndpoint is the release page. Only the last segment, the release ID,
	// is required by the catalog. The artist and title segments may be empty.
	releaseEndpoint = "%s/albums/%s/%s/%s"

	defaultRequestTimeout = 10 * time.Second

	imageLimitSize = 4 * 1024 * 1024
)

// APIClient gets catalog data directly from the site's unofficial AJAX endpoints. It
// throttles itself so that it never makes more than one request per the configured
// delay. It is safe for concurrent use.
//
// Successful searches are remembered in a SearchCache. Repeated searches for the
// same artist and title are answered from the cache without contacting the catalog.
//
// It implements Finder.
type APIClient struct {
	baseURL        string
	useragent      string
	requestTimeout time.Duration
	httpClient     *http.Client

	limiter  *rate.Limiter
	cache    *SearchCache
	searches singleflight.Group
}

// NewAPIClient returns a fully configured APIClient for the catalog at baseURL.
//
// The useragent is sent with every request. No more than one request per `delay` is
// made, a zero delay disables throttling. When cache is nil a new unbounded one
// is used.
func NewAPIClient(
	baseURL string,
	useragent string,
	delay time.Duration,
	cache *SearchCache,
) *APIClient {
	if cache == nil {
		cache = NewSearchCache(0)
	}

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &APIClient{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		useragent:      useragent,
		requestTimeout: defaultRequestTimeout,
		httpClient:     http.DefaultClient,
		limiter:        rate.NewLimiter(limit, 1),
		cache:          cache,
	}
}

// SetHTTPClient replaces the http.Client used for all requests.
func (c *APIClient) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetRequestTimeout sets the deadline for every single request to the catalog.
func (c *APIClient) SetRequestTimeout(timeout time.Duration) {
	c.requestTimeout = timeout
}

// Cache returns the cache used for search results.
func (c *APIClient) Cache() *SearchCache {
	return c.cache
}

// Search returns the best hit for the release `title` by `artist`. It returns
// ErrDataNotFound when the catalog has no matches.
func (c *APIClient) Search(ctx context.Context, artist, title string) (SearchHit, error) {
	if hit, ok := c.cache.Get(artist, title); ok {
		log.Debugf("Search cache hit for artist(%s) title(%s)", artist, title)
		return hit, nil
	}

	if err := ctx.Err(); err != nil {
		return SearchHit{}, err
	}

	// Concurrent searches for the same release share one request. It must not be
	// stopped by whichever caller started it, so every caller only stops waiting
	// for it on its own context. The request is still bound by requestTimeout.
	flightKey := artist + "\x00" + title
	results := c.searches.DoChan(flightKey, func() (interface{}, error) {
		return c.search(context.WithoutCancel(ctx), artist, title)
	})

	select {
	case <-ctx.Done():
		return SearchHit{}, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return SearchHit{}, res.Err
		}
		return res.Val.(SearchHit), nil
	}
}

func (c *APIClient) search(ctx context.Context, artist, title string) (SearchHit, error) {
	query := url.Values{}
	query.Set("bandName", artist)
	query.Set("releaseTitle", title)
	searchURL := fmt.Sprintf(apiSearchEndpoint, c.baseURL) + "?" + query.Encode()

	body, err := c.fetch(ctx, searchURL, 0)
	if err != nil {
		return SearchHit{}, err
	}

	var resp apiSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Debugf("Decoding search response from %s: %s", searchURL, err)
		return SearchHit{}, newStructureError("undecodable search response", string(body))
	}

	if resp.Error != "" {
		return SearchHit{}, &UpstreamError{Message: resp.Error}
	}

	hit, err := parseSearchRows(resp.Rows)
	if err != nil {
		return SearchHit{}, fmt.Errorf("search for artist(%s) title(%s): %w", artist, title, err)
	}

	c.cache.Put(artist, title, hit)
	return hit, nil
}

// Songs returns the songs of the release with ID releaseID.
func (c *APIClient) Songs(ctx context.Context, releaseID string) ([]SongEntry, error) {
	pageURL := releaseURL(c.baseURL, releaseID)

	body, err := c.fetch(ctx, pageURL, 0)
	if err != nil {
		return nil, err
	}

	songs, err := ParseSongList(string(body))
	if err != nil {
		return nil, fmt.Errorf("release page %s: %w", pageURL, err)
	}

	return songs, nil
}

// Lyrics returns the lyrics for the song with ID songID. The lyrics endpoint does
// not need the release so releaseID is ignored.
func (c *APIClient) Lyrics(ctx context.Context, _, songID string) (LyricsResult, error) {
	lyricsURL := fmt.Sprintf(apiLyricsEndpoint, c.baseURL, url.PathEscape(songID))

	body, err := c.fetch(ctx, lyricsURL, 0)
	if err != nil {
		return LyricsResult{}, err
	}

	return ParseLyrics(string(body), FragmentLineSeparator), nil
}

// LogoURL returns the absolute URL of the logo for artist with ID artistID.
func (c *APIClient) LogoURL(artistID string) string {
	return c.baseURL + ImagePath(artistID, LogoImage)
}

// CoverURL returns the absolute URL of the cover for release with ID releaseID.
func (c *APIClient) CoverURL(releaseID string) string {
	return c.baseURL + ImagePath(releaseID, CoverImage)
}

// LogoImage downloads the logo of an artist. It returns ErrDataNotFound when the
// artist has no logo.
func (c *APIClient) LogoImage(ctx context.Context, artistID string) ([]byte, error) {
	return c.fetch(ctx, c.LogoURL(artistID), imageLimitSize)
}

// CoverImage downloads the cover of a release. It returns ErrDataNotFound when the
// release has no cover.
func (c *APIClient) CoverImage(ctx context.Context, releaseID string) ([]byte, error) {
	return c.fetch(ctx, c.CoverURL(releaseID), imageLimitSize)
}

// fetch makes a GET request for URL and returns the response body. When sizeLimit
// is positive bodies larger than it result in ErrImageTooBig.
func (c *APIClient) fetch(ctx context.Context, URL string, sizeLimit int64) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for request slot: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, URL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating catalog request: %w", err)
	}
	req.Header.Set("User-Agent", c.useragent)

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()
	req = req.WithContext(ctx)

	log.Debugf("GET %s", URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", URL, ErrDataNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned HTTP %d for %s", resp.StatusCode, URL)
	}

	var bodyReader io.Reader = resp.Body
	if sizeLimit > 0 {
		bodyReader = io.LimitReader(resp.Body, sizeLimit+1)
	}

	body, err := io.ReadAll(bodyReader)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading response from %s: %w", URL, err)
	}

	if sizeLimit > 0 && int64(len(body)) > sizeLimit {
		return nil, ErrImageTooBig
	}

	return body, nil
}

func releaseURL(baseURL, releaseID string) string {
	return fmt.Sprintf(releaseEndpoint, baseURL, "", "", url.PathEscape(releaseID))
}

// apiSearchResponse is the DataTables envelope returned by the search endpoint.
// Every row in Rows has the artist link HTML, the release link HTML and the
// release type.
type apiSearchResponse struct {
	Error               string     `json:"error"`
	TotalRecords        int        `json:"iTotalRecords"`
	TotalDisplayRecords int        `json:"iTotalDisplayRecords"`
	Rows                [][]string `json:"aaData"`
}
