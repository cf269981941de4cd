package webserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironsmile/grimoire/src/art"
	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

// errBadRequest is an error caused by the client's request.
type errBadRequest string

func (e errBadRequest) Error() string {
	return string(e)
}

// statusCode returns the HTTP status code which best describes err.
func statusCode(err error) int {
	var (
		badReq   errBadRequest
		upstream *metallum.UpstreamError
	)

	switch {
	case errors.As(err, &badReq):
		return http.StatusBadRequest
	case errors.Is(err, metallum.ErrDataNotFound),
		errors.Is(err, art.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, metallum.ErrTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, metallum.ErrStructure),
		errors.As(err, &upstream),
		errors.Is(err, metallum.ErrImageTooBig):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with a JSON error message for err.
func writeError(writer http.ResponseWriter, req *http.Request, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		log.Errorf("%s %s: %s", req.Method, req.URL.Path, err)
	} else {
		log.Debugf("%s %s: %s", req.Method, req.URL.Path, err)
	}

	webutils.JSONError(writer, err.Error(), code)
}

// catalogID returns the route variable `name` and makes sure it looks like a
// catalog ID. All catalog IDs are positive integers.
func catalogID(req *http.Request, name string) (string, error) {
	id, ok := mux.Vars(req)[name]
	if !ok {
		return "", errBadRequest("missing " + name)
	}

	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", errBadRequest("malformed " + name + " `" + id + "`")
	}

	return id, nil
}
