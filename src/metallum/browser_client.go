package metallum

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const (
	browserSearchEndpoint = "%s/search/advanced/searching/albums"

	searchTableSelector    = "table#searchResultsAlbum"
	searchFirstRowSelector = searchTableSelector + " > tbody > tr:first-child > td"
	songFirstRowSelector   = songTableBodySelector + " > tr:first-child > td"

	// lyricsPlaceholder is shown in a lyrics cell until its lyrics are loaded.
	lyricsPlaceholder = "(loading lyrics...)"

	// DefaultCookieName is the name of the cookie with which the anti-bot challenge
	// is passed.
	DefaultCookieName = "cf_clearance"

	// DefaultWaitTimeout is how long the BrowserClient waits for page elements.
	DefaultWaitTimeout = 15 * time.Second
)

// BrowserClient gets catalog data by driving a browser. All of its methods use the
// same Session so calls are serialized. It is safe for concurrent use.
//
// Every call first sets the anti-bot cookie into the session. The value of the
// cookie is given with SetCookie and may be changed at any time. It will be used
// from the next call onwards. An empty value removes the cookie from the browser.
//
// Successful searches are remembered in a SearchCache which may be shared with an
// APIClient. Cache hits do not touch the session.
//
// It implements Finder.
type BrowserClient struct {
	sessionMu sync.Mutex
	session   Session

	cookieMu    sync.RWMutex
	cookieName  string
	cookieValue string

	cache *SearchCache

	baseURL      string
	cookieDomain string
	waitTimeout  time.Duration
}

// NewBrowserClient returns a BrowserClient for the catalog at baseURL which will use
// session for all of its work. The client owns the session and closes it in Close.
// When cache is nil a new unbounded one is used.
func NewBrowserClient(
	baseURL string,
	session Session,
	cache *SearchCache,
) (*BrowserClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("catalog URL %s has no host", baseURL)
	}

	if cache == nil {
		cache = NewSearchCache(0)
	}

	return &BrowserClient{
		session:      session,
		cache:        cache,
		cookieName:   DefaultCookieName,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		cookieDomain: parsed.Hostname(),
		waitTimeout:  DefaultWaitTimeout,
	}, nil
}

// SetCookie sets the value of the anti-bot cookie.
func (c *BrowserClient) SetCookie(value string) {
	c.cookieMu.Lock()
	defer c.cookieMu.Unlock()

	c.cookieValue = value
}

// Cookie returns the current value of the anti-bot cookie.
func (c *BrowserClient) Cookie() string {
	c.cookieMu.RLock()
	defer c.cookieMu.RUnlock()

	return c.cookieValue
}

// SetCookieName changes the name of the anti-bot cookie.
func (c *BrowserClient) SetCookieName(name string) {
	c.cookieMu.Lock()
	defer c.cookieMu.Unlock()

	c.cookieName = name
}

// SetWaitTimeout changes how long the client waits for page elements to appear.
func (c *BrowserClient) SetWaitTimeout(timeout time.Duration) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	c.waitTimeout = timeout
}

// Close closes the underlying browser session.
func (c *BrowserClient) Close() error {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	return c.session.Close()
}

// Search returns the best hit for the release `title` by `artist`. It returns
// ErrDataNotFound when the catalog has no matches.
func (c *BrowserClient) Search(ctx context.Context, artist, title string) (SearchHit, error) {
	if hit, ok := c.cache.Get(artist, title); ok {
		log.Debugf("Search cache hit for artist(%s) title(%s)", artist, title)
		return hit, nil
	}

	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	query := url.Values{}
	query.Set("bandName", artist)
	query.Set("releaseTitle", title)
	searchURL := fmt.Sprintf(browserSearchEndpoint, c.baseURL) + "?" + query.Encode()

	tableHTML, err := c.openTable(ctx, searchURL, searchFirstRowSelector, searchTableSelector)
	if err != nil {
		return SearchHit{}, err
	}

	rows, err := searchRowsFromTable(tableHTML)
	if err != nil {
		return SearchHit{}, fmt.Errorf("search page %s: %w", searchURL, err)
	}

	hit, err := parseSearchRows(rows)
	if err != nil {
		return SearchHit{}, fmt.Errorf("search for artist(%s) title(%s): %w", artist, title, err)
	}

	c.cache.Put(artist, title, hit)
	return hit, nil
}

// Songs returns the songs of the release with ID releaseID.
func (c *BrowserClient) Songs(ctx context.Context, releaseID string) ([]SongEntry, error) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	pageURL := releaseURL(c.baseURL, releaseID)
	tableHTML, err := c.openTable(ctx, pageURL, songFirstRowSelector, songTableSelector)
	if err != nil {
		return nil, err
	}

	songs, err := ParseSongList(tableHTML)
	if err != nil {
		return nil, fmt.Errorf("release page %s: %w", pageURL, err)
	}

	return songs, nil
}

// Lyrics returns the lyrics of song songID by opening the page of release releaseID
// and revealing the song's lyrics there. It returns ErrDataNotFound when the song is
// not in the release.
func (c *BrowserClient) Lyrics(
	ctx context.Context,
	releaseID string,
	songID string,
) (LyricsResult, error) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	pageURL := releaseURL(c.baseURL, releaseID)
	tableHTML, err := c.openTable(ctx, pageURL, songFirstRowSelector, songTableSelector)
	if err != nil {
		return LyricsResult{}, err
	}

	lyricsCell, err := songLyricsCell(tableHTML, songID)
	if err != nil {
		return LyricsResult{}, fmt.Errorf("release page %s: %w", pageURL, err)
	}

	children := lyricsCell.Children()
	switch {
	case children.Length() == 0:
		return NotAvailableLyrics(), nil
	case children.Length() == 1 && goquery.NodeName(children) == "em":
		return InstrumentalLyrics(), nil
	case children.Length() == 1 && goquery.NodeName(children) == "a":
		text, err := c.revealLyrics(ctx, songID)
		if err != nil {
			return LyricsResult{}, err
		}
		return ParseLyrics(text, BrowserLineSeparator), nil
	}

	cellHTML, _ := goquery.OuterHtml(lyricsCell)
	return LyricsResult{}, newStructureError(
		fmt.Sprintf("unexpected lyrics cell content for song %s", songID),
		cellHTML,
	)
}

// LogoURL returns the absolute URL of the logo for artist with ID artistID.
func (c *BrowserClient) LogoURL(artistID string) string {
	return c.baseURL + ImagePath(artistID, LogoImage)
}

// CoverURL returns the absolute URL of the cover for release with ID releaseID.
func (c *BrowserClient) CoverURL(releaseID string) string {
	return c.baseURL + ImagePath(releaseID, CoverImage)
}

// openTable sets the cookie, loads pageURL, waits for readySelector and returns the
// markup of the table matching tableSelector. Must be called with sessionMu held.
func (c *BrowserClient) openTable(
	ctx context.Context,
	pageURL string,
	readySelector string,
	tableSelector string,
) (string, error) {
	if err := c.injectCookie(ctx); err != nil {
		return "", err
	}

	log.Debugf("Browser navigating to %s", pageURL)
	if err := c.session.Navigate(ctx, pageURL); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", pageURL, err)
	}

	if err := c.waitFor(ctx, func(ctx context.Context) error {
		return c.session.WaitReady(ctx, readySelector)
	}); err != nil {
		return "", fmt.Errorf("waiting for %s on %s: %w", readySelector, pageURL, err)
	}

	tableHTML, err := c.session.OuterHTML(ctx, tableSelector)
	if err != nil {
		return "", fmt.Errorf("getting %s from %s: %w", tableSelector, pageURL, err)
	}

	return tableHTML, nil
}

func (c *BrowserClient) injectCookie(ctx context.Context) error {
	c.cookieMu.RLock()
	name, value := c.cookieName, c.cookieValue
	c.cookieMu.RUnlock()

	if value == "" {
		log.Warnf("No %s cookie set, the browser may be stopped by the anti-bot check", name)
		if err := c.session.DeleteCookie(ctx, name, c.cookieDomain); err != nil {
			return fmt.Errorf("deleting %s cookie: %w", name, err)
		}
		return nil
	}

	if err := c.session.SetCookie(ctx, name, value, c.cookieDomain); err != nil {
		return fmt.Errorf("setting %s cookie: %w", name, err)
	}

	return nil
}

// revealLyrics clicks on the song's lyrics button and returns the lyrics text once
// it has been loaded.
func (c *BrowserClient) revealLyrics(ctx context.Context, songID string) (string, error) {
	var (
		buttonSelector = fmt.Sprintf(`a[href="#%s"]`, songID)
		lyricsSelector = fmt.Sprintf("#lyrics_%s", songID)
	)

	if err := c.session.Click(ctx, buttonSelector); err != nil {
		return "", fmt.Errorf("clicking lyrics button of song %s: %w", songID, err)
	}

	if err := c.waitFor(ctx, func(ctx context.Context) error {
		return c.session.WaitTextReplaced(ctx, lyricsSelector, lyricsPlaceholder)
	}); err != nil {
		return "", fmt.Errorf("waiting for lyrics of song %s: %w", songID, err)
	}

	text, err := c.session.Text(ctx, lyricsSelector)
	if err != nil {
		return "", fmt.Errorf("getting lyrics text of song %s: %w", songID, err)
	}

	return text, nil
}

// waitFor runs wait bounded by the client's wait timeout. Running out of time is
// reported as ErrTimeout.
func (c *BrowserClient) waitFor(ctx context.Context, wait func(context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	err := wait(waitCtx)
	if err == nil {
		return nil
	}

	if ctx.Err() == nil && (errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(waitCtx.Err(), context.DeadlineExceeded)) {
		return fmt.Errorf("%w after %s", ErrTimeout, c.waitTimeout)
	}

	return err
}

// searchRowsFromTable converts the rendered search results table into the same row
// shape the search endpoint returns: artist link HTML, release link HTML and
// release type.
func searchRowsFromTable(tableHTML string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, newStructureError("unparsable search results table", tableHTML)
	}

	tbody := doc.Find(searchTableSelector + " > tbody")
	if tbody.Length() != 1 {
		return nil, newStructureError("no single search results table body", tableHTML)
	}

	var (
		rows    [][]string
		rowsErr error
	)

	tbody.ChildrenFiltered("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() == 1 && cells.HasClass("dataTables_empty") {
			return true
		}

		if cells.Length() < 3 {
			rowHTML, _ := goquery.OuterHtml(tr)
			rowsErr = newStructureError("search row with less than 3 cells", rowHTML)
			return false
		}

		artistHTML, _ := cells.Eq(0).Html()
		releaseHTML, _ := cells.Eq(1).Html()
		rows = append(rows, []string{
			artistHTML,
			releaseHTML,
			collapseSpaces(cells.Eq(2).Text()),
		})
		return true
	})

	if rowsErr != nil {
		return nil, rowsErr
	}

	return rows, nil
}

// songLyricsCell finds the row of song songID in the song table and returns its
// last cell.
func songLyricsCell(tableHTML, songID string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, newStructureError("unparsable song table", tableHTML)
	}

	tbody := doc.Find(songTableBodySelector)
	if tbody.Length() != 1 {
		return nil, newStructureError("no single song table body", tableHTML)
	}

	row := tbody.ChildrenFiltered("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		id, ok := songRowID(tr)
		return ok && id == songID
	}).First()

	if row.Length() == 0 {
		return nil, fmt.Errorf("song %s: %w", songID, ErrDataNotFound)
	}

	return row.ChildrenFiltered("td").Last(), nil
}
