package webserver_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/ironsmile/grimoire/src/webserver"
)

// TestAccessHandler makes sure that the access handler calls the wrapped handler
// and logs the request and the response status.
func TestAccessHandler(t *testing.T) {
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	accessHandler := webserver.NewAccessHandler(wrapped)

	buffer := &bytes.Buffer{}
	log.SetOutput(buffer)
	defer func() {
		log.SetOutput(os.Stderr)
	}()

	req := httptest.NewRequest(http.MethodGet, "/v1/search?artist=Adramelech", nil)
	req.Header.Set("User-Agent", "http-unit-test")

	resp := httptest.NewRecorder()
	accessHandler.ServeHTTP(resp, req)

	if resp.Code != http.StatusTeapot {
		t.Errorf("expected the wrapped handler's status but got %d", resp.Code)
	}

	logged := buffer.String()
	for _, expected := range []string{
		"/v1/search?artist=Adramelech",
		"status=418",
		"http-unit-test",
	} {
		if !strings.Contains(logged, expected) {
			t.Errorf("access log did not contain `%s`: %s", expected, logged)
		}
	}
}
