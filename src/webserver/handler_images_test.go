package webserver_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/grimoire/src/art"
	"github.com/ironsmile/grimoire/src/art/artfakes"
	"github.com/ironsmile/grimoire/src/metallum"
)

// TestArtistLogoHandler checks that the logo handler responds with the image from
// the catalog and shrinks it when asked to.
func TestArtistLogoHandler(t *testing.T) {
	imgOriginal := []byte("artist 2426 logo original")
	imgSmall := []byte("artist 2426 logo small")

	tb := newTestBackends()
	tb.images.LogoImageCalls(func(_ context.Context, artistID string) ([]byte, error) {
		if artistID != "2426" {
			return nil, fmt.Errorf("logo: %w", metallum.ErrDataNotFound)
		}
		return imgOriginal, nil
	})
	tb.thumbnails.ShrinkReturns(imgSmall, nil)

	resp := do(t, tb.backends(), http.MethodGet, "/v1/artist/2426/logo", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, imgOriginal, resp.Body.Bytes())
	assert.Equal(t, "max-age=604800", resp.Header().Get("Cache-Control"))
	assert.Equal(t, 0, tb.thumbnails.ShrinkCallCount())

	resp = do(t, tb.backends(), http.MethodGet, "/v1/artist/2426/logo?size=small", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, imgSmall, resp.Body.Bytes())

	require.Equal(t, 1, tb.thumbnails.ShrinkCallCount())
	_, shrunk, width := tb.thumbnails.ShrinkArgsForCall(0)
	assert.Equal(t, imgOriginal, shrunk)
	assert.Equal(t, 120, width)

	resp = do(t, tb.backends(), http.MethodGet, "/v1/artist/777/logo", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(t, tb.backends(), http.MethodGet, "/v1/artist/boba/logo", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	tb.images.LogoImageCalls(func(context.Context, string) ([]byte, error) {
		return nil, metallum.ErrImageTooBig
	})
	resp = do(t, tb.backends(), http.MethodGet, "/v1/artist/2426/logo", "")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

// TestReleaseCoverHandlerFallback makes sure covers missing in the catalog are
// searched for elsewhere only when the request says which album it is.
func TestReleaseCoverHandlerFallback(t *testing.T) {
	imgCatalog := []byte("cover from the catalog")
	imgFallback := []byte("cover from the archive")

	tb := newTestBackends()
	tb.images.CoverImageCalls(func(_ context.Context, releaseID string) ([]byte, error) {
		if releaseID == "73550" {
			return imgCatalog, nil
		}
		return nil, fmt.Errorf("cover: %w", metallum.ErrDataNotFound)
	})

	covers := &artfakes.FakeFinder{}
	covers.FrontCoverCalls(func(_ context.Context, artist, album string) ([]byte, error) {
		if artist == "Adramelech" && album == "Psychostasia" {
			return imgFallback, nil
		}
		return nil, art.ErrImageNotFound
	})

	backends := tb.backends()
	backends.Covers = covers

	resp := do(t, backends, http.MethodGet, "/v1/release/73550/cover", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, imgCatalog, resp.Body.Bytes())
	assert.Equal(t, 0, covers.FrontCoverCallCount())

	resp = do(t, backends, http.MethodGet,
		"/v1/release/1871/cover?artist=Adramelech&album=Psychostasia", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, imgFallback, resp.Body.Bytes())

	resp = do(t, backends, http.MethodGet,
		"/v1/release/1871/cover?artist=Adramelech&album=Unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	callsBefore := covers.FrontCoverCallCount()
	resp = do(t, backends, http.MethodGet, "/v1/release/1871/cover", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, callsBefore, covers.FrontCoverCallCount())

	// Without fallback the catalog error is returned as it is.
	resp = do(t, tb.backends(), http.MethodGet,
		"/v1/release/1871/cover?artist=Adramelech&album=Psychostasia", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// Errors other than "not found" do not trigger the fallback.
	tb.images.CoverImageCalls(func(context.Context, string) ([]byte, error) {
		return nil, errors.New("connection reset")
	})
	callsBefore = covers.FrontCoverCallCount()
	resp = do(t, backends, http.MethodGet,
		"/v1/release/1871/cover?artist=Adramelech&album=Psychostasia", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, callsBefore, covers.FrontCoverCallCount())
}

func TestReleaseCoverHandlerThumbnailError(t *testing.T) {
	tb := newTestBackends()
	tb.images.CoverImageReturns([]byte("not an image"), nil)
	tb.thumbnails.ShrinkReturns(nil, errors.New("error decoding image"))

	resp := do(t, tb.backends(), http.MethodGet, "/v1/release/73550/cover?size=small", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestImageURLHandlers(t *testing.T) {
	tb := newTestBackends()

	resp := do(t, tb.backends(), http.MethodGet, "/v1/artist/2426/logo/url", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t,
		`{"url": "https://catalog.test/images/2/4/2/6/2426_logo.jpg"}`,
		resp.Body.String(),
	)

	resp = do(t, tb.backends(), http.MethodGet,
		"/v1/release/73550/cover/url?strategy=browser", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t,
		`{"url": "https://catalog.test/images/7/3/5/5/73550.jpg"}`,
		resp.Body.String(),
	)
	assert.Equal(t, 1, tb.browser.CoverURLCallCount())
	assert.Equal(t, 0, tb.images.CoverImageCallCount())

	resp = do(t, tb.backends(), http.MethodGet, "/v1/release/x/cover/url", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

