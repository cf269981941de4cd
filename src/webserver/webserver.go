// Package webserver contains the HTTP API of Grimoire. It exposes the catalog
// finders, images and the browser cookie to HTTP clients.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

// ServerConfig configures the HTTP server itself.
type ServerConfig struct {
	// Address is the host:port on which the server listens.
	Address string

	// ReadTimeout and WriteTimeout are passed to the http.Server as they are.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server represents our webserver. It will be controlled from here.
type Server struct {
	cfg      ServerConfig
	backends Backends

	// wg is used in Server.Wait to sync with server's end.
	wg sync.WaitGroup

	// httpSrv is the actual http.Server doing the HTTP work.
	httpSrv *http.Server

	// listener is the server's net.Listener. Used in the Server.Stop func.
	listener net.Listener
}

// NewServer returns a new Server using the supplied configuration cfg. The returned
// server is ready and calling its Serve method will start it.
func NewServer(cfg ServerConfig, backends Backends) *Server {
	return &Server{
		cfg:      cfg,
		backends: backends,
	}
}

// Serve starts listening and serving in a separate goroutine. It returns once the
// listener is ready or with an error when listening is not possible. Trying to call
// this method more than once for the same server will result in an error.
func (srv *Server) Serve() error {
	if srv.listener != nil {
		return errors.New("second Server.Serve call for the same server")
	}

	lsn, err := net.Listen("tcp", srv.cfg.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", srv.cfg.Address, err)
	}
	srv.listener = lsn

	srv.httpSrv = &http.Server{
		Handler:      NewHandler(srv.backends),
		ReadTimeout:  srv.cfg.ReadTimeout,
		WriteTimeout: srv.cfg.WriteTimeout,
	}

	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()

		log.Printf("Webserver started on %s", lsn.Addr())
		reason := srv.httpSrv.Serve(lsn)
		log.Println("Webserver stopped.")

		if reason != nil && !errors.Is(reason, http.ErrServerClosed) {
			log.Printf("Reason: %s", reason)
		}
	}()

	return nil
}

// Addr returns the address on which the server is listening. It is only valid
// after Serve.
func (srv *Server) Addr() net.Addr {
	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Stop gracefully stops the webserver. Requests in flight are given until ctx is
// done to finish.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop.
func (srv *Server) Wait() {
	srv.wg.Wait()
}

// NewHandler returns the main handler of the server. It is the router wrapped
// with compression and access logging.
func NewHandler(backends Backends) http.Handler {
	var handler http.Handler = NewRouter(backends)
	handler = NewGzipHandler(handler, []string{"/logo", "/cover"})
	return NewAccessHandler(handler)
}

// NewRouter returns the handler with all API endpoints attached.
func NewRouter(backends Backends) http.Handler {
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.UseEncodedPath()

	handlers := map[string]http.Handler{
		APIv1EndpointSearch:       NewSearchHandler(backends),
		APIv1EndpointSongs:        NewSongsHandler(backends),
		APIv1EndpointLyrics:       NewLyricsHandler(backends),
		APIv1EndpointArtistLogo:   NewArtistLogoHandler(backends),
		APIv1EndpointLogoURL:      NewImageURLHandler(backends, metallum.LogoImage),
		APIv1EndpointReleaseCover: NewReleaseCoverHandler(backends),
		APIv1EndpointCoverURL:     NewImageURLHandler(backends, metallum.CoverImage),
		APIv1EndpointCookie:       NewCookieHandler(backends.Cookies),
	}

	for endpoint, handler := range handlers {
		router.Handle(endpoint, handler).Methods(APIv1Methods[endpoint]...)
	}

	router.NotFoundHandler = http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			webutils.JSONError(w, "404 page not found", http.StatusNotFound)
		},
	)
	router.MethodNotAllowedHandler = http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			webutils.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		},
	)

	return router
}
