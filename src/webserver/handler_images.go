package webserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ironsmile/grimoire/src/metallum"
	"github.com/ironsmile/grimoire/src/webserver/webutils"
)

const imageRequestTimeout = 1 * time.Minute

// ArtistLogoHandler is a http.Handler which serves the logo of an artist.
type ArtistLogoHandler struct {
	backends Backends
}

// NewArtistLogoHandler returns a new ArtistLogoHandler.
func NewArtistLogoHandler(backends Backends) *ArtistLogoHandler {
	return &ArtistLogoHandler{
		backends: backends,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (alh *ArtistLogoHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	artistID, err := catalogID(req, "artistID")
	if err != nil {
		writeError(writer, req, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), imageRequestTimeout)
	defer cancel()

	img, err := alh.backends.Images.LogoImage(ctx, artistID)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	serveImage(ctx, writer, req, alh.backends, img)
}

// ReleaseCoverHandler is a http.Handler which serves the cover of a release. When
// the catalog has no cover and the request has "artist" and "album" query values
// the cover is searched for in the Cover Art Archive.
type ReleaseCoverHandler struct {
	backends Backends
}

// NewReleaseCoverHandler returns a new ReleaseCoverHandler.
func NewReleaseCoverHandler(backends Backends) *ReleaseCoverHandler {
	return &ReleaseCoverHandler{
		backends: backends,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (rch *ReleaseCoverHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	releaseID, err := catalogID(req, "releaseID")
	if err != nil {
		writeError(writer, req, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), imageRequestTimeout)
	defer cancel()

	img, err := rch.backends.Images.CoverImage(ctx, releaseID)
	if errors.Is(err, metallum.ErrDataNotFound) {
		img, err = rch.fallback(ctx, req, err)
	}
	if err != nil {
		writeError(writer, req, err)
		return
	}

	serveImage(ctx, writer, req, rch.backends, img)
}

// fallback looks for the cover outside of the catalog. catalogErr is returned when
// there is no way to do that.
func (rch *ReleaseCoverHandler) fallback(
	ctx context.Context,
	req *http.Request,
	catalogErr error,
) ([]byte, error) {
	query := req.URL.Query()
	artist, album := query.Get("artist"), query.Get("album")
	if rch.backends.Covers == nil || artist == "" || album == "" {
		return nil, catalogErr
	}

	log.Debugf("No catalog cover, trying the fallback for artist(%s) album(%s)",
		artist, album)
	return rch.backends.Covers.FrontCover(ctx, artist, album)
}

// serveImage writes img into writer. It is shrunk first when the request asks
// for a small image.
func serveImage(
	ctx context.Context,
	writer http.ResponseWriter,
	req *http.Request,
	backends Backends,
	img []byte,
) {
	if req.URL.Query().Get("size") == "small" && backends.Thumbnails != nil {
		small, err := backends.Thumbnails.Shrink(ctx, img, backends.ThumbnailWidth)
		if err != nil {
			writeError(writer, req, err)
			return
		}
		img = small
	}

	writer.Header().Set("Content-Type", http.DetectContentType(img))
	writer.Header().Set("Cache-Control", "max-age=604800")
	if _, err := writer.Write(img); err != nil {
		log.Printf("error sending image for %s: %s", req.URL.Path, err)
	}
}

// ImageURLHandler is a http.Handler which returns the catalog URL of a logo or
// a cover.
type ImageURLHandler struct {
	backends Backends
	kind     metallum.ImageKind
}

// NewImageURLHandler returns a new ImageURLHandler for images of the given kind.
func NewImageURLHandler(backends Backends, kind metallum.ImageKind) *ImageURLHandler {
	return &ImageURLHandler{
		backends: backends,
		kind:     kind,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (iuh *ImageURLHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	idName := "releaseID"
	if iuh.kind == metallum.LogoImage {
		idName = "artistID"
	}

	id, err := catalogID(req, idName)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	finder, err := iuh.backends.finder(req)
	if err != nil {
		writeError(writer, req, err)
		return
	}

	imageURL := finder.CoverURL(id)
	if iuh.kind == metallum.LogoImage {
		imageURL = finder.LogoURL(id)
	}

	webutils.JSONResponse(writer, imageURLResponse{URL: imageURL})
}

type imageURLResponse struct {
	URL string `json:"url"`
}
