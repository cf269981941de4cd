package webserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/metallum/metallumfakes"
	"github.com/ironsmile/grimoire/src/webserver"
	"github.com/ironsmile/grimoire/src/webserver/webserverfakes"
)

// testBackends holds the fakes behind webserver.Backends so that tests could
// configure and inspect them.
type testBackends struct {
	api        *metallumfakes.FakeFinder
	browser    *metallumfakes.FakeFinder
	cookies    *webserverfakes.FakeCookieHolder
	images     *webserverfakes.FakeImageFetcher
	thumbnails *webserverfakes.FakeThumbnailer
}

func newTestBackends() *testBackends {
	tb := &testBackends{
		api:        &metallumfakes.FakeFinder{},
		browser:    &metallumfakes.FakeFinder{},
		cookies:    &webserverfakes.FakeCookieHolder{},
		images:     &webserverfakes.FakeImageFetcher{},
		thumbnails: &webserverfakes.FakeThumbnailer{},
	}

	for _, finder := range []*metallumfakes.FakeFinder{tb.api, tb.browser} {
		finder.LogoURLCalls(func(id string) string {
			return "https://catalog.test" + metallum.ImagePath(id, metallum.LogoImage)
		})
		finder.CoverURLCalls(func(id string) string {
			return "https://catalog.test" + metallum.ImagePath(id, metallum.CoverImage)
		})
	}

	return tb
}

func (tb *testBackends) backends() webserver.Backends {
	return webserver.Backends{
		API:            tb.api,
		Browser:        tb.browser,
		Cookies:        tb.cookies,
		Images:         tb.images,
		Thumbnails:     tb.thumbnails,
		ThumbnailWidth: 120,
	}
}

// do makes a request against the full application router.
func do(
	t *testing.T,
	backends webserver.Backends,
	method string,
	target string,
	body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	resp := httptest.NewRecorder()
	webserver.NewRouter(backends).ServeHTTP(resp, req)

	return resp
}

// decodeJSON decodes the body of resp into v.
func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.Equal(
		t,
		"application/json; charset=utf-8",
		resp.Header().Get("Content-Type"),
	)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v), resp.Body.String())
}

// errorBody returns the error message of a JSON error response.
func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	return body.Error
}
