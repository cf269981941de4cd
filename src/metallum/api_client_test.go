package metallum_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/grimoire/src/metallum"
)

const testUserAgent = "grimoire/testing"

// searchEnvelope builds a search endpoint response body.
func searchEnvelope(t *testing.T, errMsg string, rows [][]string) []byte {
	t.Helper()

	if rows == nil {
		rows = [][]string{}
	}

	body, err := json.Marshal(map[string]any{
		"error":                errMsg,
		"iTotalRecords":        len(rows),
		"iTotalDisplayRecords": len(rows),
		"sEcho":                0,
		"aaData":               rows,
	})
	require.NoError(t, err)
	return body
}

var adramelechRow = []string{
	`<a href="/bands/Adramelech/2426">Adramelech</a>`,
	`<a href="/albums/Adramelech/Human_Extermination/73550">Human Extermination</a>`,
	"Demo",
}

// TestAPIClientSearch checks the golden path for searching a release. The parsed
// hit must carry the IDs from the links.
func TestAPIClientSearch(t *testing.T) {
	var (
		serverErrors []string
		mu           sync.Mutex
	)

	handler := func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		if req.URL.Path != "/search/ajax-advanced/searching/albums" {
			serverErrors = append(serverErrors, fmt.Sprintf("unknown path: %s", req.URL.Path))
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if req.UserAgent() != testUserAgent {
			serverErrors = append(serverErrors, fmt.Sprintf(
				"expected user agent '%s' but got '%s'", testUserAgent, req.UserAgent(),
			))
		}

		query := req.URL.Query()
		if query.Get("bandName") != "Adramelech" ||
			query.Get("releaseTitle") != "Human Extermination" {
			serverErrors = append(serverErrors, fmt.Sprintf("unexpected query: %s", query))
		}

		_, _ = w.Write(searchEnvelope(t, "", [][]string{adramelechRow}))
	}
	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
	hit, err := client.Search(context.Background(), "Adramelech", "Human Extermination")

	for _, se := range serverErrors {
		t.Error(se)
	}

	require.NoError(t, err)
	assert.Equal(t, "Adramelech", hit.Artist.Text)
	assert.Equal(t, "2426", hit.ArtistID())
	assert.Equal(t, "Human Extermination", hit.Release.Text)
	assert.Equal(t, "73550", hit.ReleaseID())
	assert.Equal(t, "Demo", hit.ReleaseType)

	cached, ok := client.Cache().Get("Adramelech", "Human Extermination")
	require.True(t, ok, "search hit was not stored in the cache")
	assert.Equal(t, hit, cached)
}

// TestAPIClientSearchUsesCache makes sure repeated searches do not reach the
// catalog once the hit is cached.
func TestAPIClientSearchUsesCache(t *testing.T) {
	var requests int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requests, 1)
		_, _ = w.Write(searchEnvelope(t, "", [][]string{adramelechRow}))
	}))
	defer srv.Close()

	cache := metallum.NewSearchCache(0)
	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, cache)
	ctx := context.Background()

	first, err := client.Search(ctx, "Adramelech", "Human Extermination")
	require.NoError(t, err)

	second, err := client.Search(ctx, "Adramelech", "Human Extermination")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))

	cache.Clear()
	_, err = client.Search(ctx, "Adramelech", "Human Extermination")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
}

// TestAPIClientSearchSharedRequest makes sure that concurrent searches for the same
// release share one request and that one of them giving up does not fail the
// others.
func TestAPIClientSearchSharedRequest(t *testing.T) {
	var (
		requests    int32
		arrived     = make(chan struct{}, 1)
		release     = make(chan struct{})
		releaseOnce sync.Once
	)
	releaseRequest := func() {
		releaseOnce.Do(func() { close(release) })
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requests, 1)
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		_, _ = w.Write(searchEnvelope(t, "", [][]string{adramelechRow}))
	}))
	defer srv.Close()
	defer releaseRequest()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
	client.SetHTTPClient(srv.Client())

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()

	firstErr := make(chan error, 1)
	go func() {
		_, err := client.Search(firstCtx, "Adramelech", "Human Extermination")
		firstErr <- err
	}()
	<-arrived

	type searchResult struct {
		hit metallum.SearchHit
		err error
	}
	second := make(chan searchResult, 1)
	go func() {
		hit, err := client.Search(context.Background(), "Adramelech", "Human Extermination")
		second <- searchResult{hit: hit, err: err}
	}()

	// Give the second search time to join the request in flight.
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	err := <-firstErr
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	releaseRequest()
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "73550", res.hit.ReleaseID())
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	assert.Equal(t, 1, client.Cache().Len())
}

// TestAPIClientSearchMultipleRows checks that the first of many rows wins every
// time.
func TestAPIClientSearchMultipleRows(t *testing.T) {
	rows := [][]string{
		adramelechRow,
		{
			`<a href="/bands/Adramelech/2426">Adramelech</a>`,
			`<a href="/albums/Adramelech/Psychostasia/1871">Psychostasia</a>`,
			"Full-length",
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(searchEnvelope(t, "", rows))
	}))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
		hit, err := client.Search(context.Background(), "Adramelech", "")
		require.NoError(t, err)
		assert.Equal(t, "73550", hit.ReleaseID())
	}
}

// TestAPIClientSearchErrors checks the failures of the search in all kind of
// situations.
func TestAPIClientSearchErrors(t *testing.T) {
	tests := []struct {
		desc       string
		handler    http.HandlerFunc
		inspectErr func(*testing.T, error)
	}{
		{
			desc: "no rows",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(searchEnvelope(t, "", nil))
			},
			inspectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, metallum.ErrDataNotFound), "got %v", err)
			},
		},
		{
			desc: "upstream error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(searchEnvelope(t, "Search query too short", [][]string{adramelechRow}))
			},
			inspectErr: func(t *testing.T, err error) {
				var upErr *metallum.UpstreamError
				require.True(t, errors.As(err, &upErr), "got %v", err)
				assert.Equal(t, "Search query too short", upErr.Message)
			},
		},
		{
			desc: "row with missing href",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(searchEnvelope(t, "", [][]string{{
					`<a>Adramelech</a>`,
					adramelechRow[1],
					"Demo",
				}}))
			},
			inspectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, metallum.ErrStructure), "got %v", err)
				assert.Contains(t, err.Error(), `<a>Adramelech</a>`)
			},
		},
		{
			desc: "row with too few columns",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write(searchEnvelope(t, "", [][]string{adramelechRow[:2]}))
			},
			inspectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, metallum.ErrStructure), "got %v", err)
			},
		},
		{
			desc: "malformed JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `definitely not JSON`)
			},
			inspectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, metallum.ErrStructure), "got %v", err)
				assert.Contains(t, err.Error(), "undecodable search response")
				assert.Contains(t, err.Error(), "definitely not JSON")
			},
		},
		{
			desc: "non string cell",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"error": "", "aaData": [[2426, "x", "Demo"]]}`)
			},
			inspectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, metallum.ErrStructure), "got %v", err)
			},
		},
		{
			desc: "interstitial page with status OK",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				fmt.Fprint(w, `<html><body>Checking your browser...</body></html>`)
			},
			inspectErr: func(t *testing.T, err error) {
				var structErr *metallum.StructureError
				require.True(t, errors.As(err, &structErr), "got %v", err)
				assert.Contains(t, structErr.Fragment, "Checking your browser")
			},
		},
		{
			desc: "non 200 status code",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			inspectErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "returned HTTP 503")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()

			client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
			client.SetHTTPClient(srv.Client())
			_, err := client.Search(context.Background(), "Adramelech", "Human Extermination")
			require.Error(t, err)
			test.inspectErr(t, err)

			assert.Equal(t, 0, client.Cache().Len(), "failed searches must not be cached")
		})
	}
}

func TestAPIClientSongs(t *testing.T) {
	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestedPath = req.URL.Path
		fmt.Fprint(w, releasePage)
	}))
	defer srv.Close()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
	songs, err := client.Songs(context.Background(), "73550")
	require.NoError(t, err)

	assert.Equal(t, "/albums///73550", requestedPath)
	require.Len(t, songs, 3)
	assert.Equal(t, metallum.SongEntry{
		ID:       "4721",
		Title:    "Human Extermination",
		Duration: "04:41",
	}, songs[0])
}

func TestAPIClientSongsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/albums///404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `<html><body>Under maintenance</body></html>`)
	}))
	defer srv.Close()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)

	_, err := client.Songs(context.Background(), "404")
	assert.True(t, errors.Is(err, metallum.ErrDataNotFound), "got %v", err)

	_, err = client.Songs(context.Background(), "1")
	assert.True(t, errors.Is(err, metallum.ErrStructure), "got %v", err)
	assert.Contains(t, err.Error(), "/albums///1")
}

func TestAPIClientLyrics(t *testing.T) {
	payloads := map[string]string{
		"/release/ajax-view-lyrics/id/1": "Line one<br />\nLine two<br />\nLine three\n",
		"/release/ajax-view-lyrics/id/2": "<em>(lyrics not available)</em>",
		"/release/ajax-view-lyrics/id/3": "\n(Instrumental)\n",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		payload, ok := payloads[req.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, payload)
	}))
	defer srv.Close()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
	ctx := context.Background()

	res, err := client.Lyrics(ctx, "", "1")
	require.NoError(t, err)
	assert.Equal(t, metallum.LyricsAvailable, res.Kind())
	assert.Equal(t, []string{"Line one", "Line two", "Line three"}, res.Lines())

	res, err = client.Lyrics(ctx, "73550", "2")
	require.NoError(t, err)
	assert.Equal(t, metallum.LyricsNotAvailable, res.Kind())

	res, err = client.Lyrics(ctx, "", "3")
	require.NoError(t, err)
	assert.Equal(t, metallum.LyricsInstrumental, res.Kind())
	assert.Empty(t, res.Lines())
}

// TestAPIClientImages checks the image URLs and downloading of images.
func TestAPIClientImages(t *testing.T) {
	logo := []byte("logo image")
	cover := []byte("cover image")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/images/5/2/8/4/528471_logo.jpg":
			_, _ = w.Write(logo)
		case "/images/1/2/12.jpg":
			_, _ = w.Write(cover)
		case "/images/9/9/9/9/9999.jpg":
			_, _ = w.Write(bytes.Repeat([]byte("x"), 4*1024*1024+1))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := metallum.NewAPIClient(srv.URL+"/", testUserAgent, 0, nil)
	ctx := context.Background()

	assert.Equal(t, srv.URL+"/images/5/2/8/4/528471_logo.jpg", client.LogoURL("528471"))
	assert.Equal(t, srv.URL+"/images/1/2/12.jpg", client.CoverURL("12"))

	img, err := client.LogoImage(ctx, "528471")
	require.NoError(t, err)
	assert.Equal(t, logo, img)

	img, err = client.CoverImage(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, cover, img)

	_, err = client.CoverImage(ctx, "13")
	assert.True(t, errors.Is(err, metallum.ErrDataNotFound), "got %v", err)

	_, err = client.CoverImage(ctx, "9999")
	assert.True(t, errors.Is(err, metallum.ErrImageTooBig), "got %v", err)
}

// TestAPIClientCancelledContext makes sure requests honour the context.
func TestAPIClientCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(searchEnvelope(t, "", [][]string{adramelechRow}))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := metallum.NewAPIClient(srv.URL, testUserAgent, 0, nil)
	_, err := client.Search(ctx, "Adramelech", "Human Extermination")
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
