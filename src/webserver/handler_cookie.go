package webserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

const maxCookieRequestSize = 16 * 1024

// CookieHandler is a http.Handler which replaces the anti-bot cookie used by the
// browser.
type CookieHandler struct {
	cookies CookieHolder
}

// NewCookieHandler returns a new CookieHandler. A nil cookies means the browser is
// disabled and every request is answered with 404.
func NewCookieHandler(cookies CookieHolder) *CookieHandler {
	return &CookieHandler{
		cookies: cookies,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (ch *CookieHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if ch.cookies == nil {
		webutils.JSONError(writer, "browser is not enabled", http.StatusNotFound)
		return
	}

	var body cookieRequest
	dec := json.NewDecoder(io.LimitReader(req.Body, maxCookieRequestSize))
	if err := dec.Decode(&body); err != nil {
		writeError(writer, req, errBadRequest("malformed request body: "+err.Error()))
		return
	}

	cookie := strings.TrimSpace(body.Cookie)
	if cookie == "" {
		writeError(writer, req, errBadRequest("cookie is empty"))
		return
	}

	ch.cookies.SetCookie(cookie)
	log.Printf("Browser cookie has been updated")
	writer.WriteHeader(http.StatusNoContent)
}

type cookieRequest struct {
	Cookie string `json:"cookie"`
}
