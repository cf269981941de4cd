// Package thumbnail produces small JPEG versions of artist logos and release covers.
// All the work is done by a fixed pool of workers so that many concurrent requests
// for thumbnails cannot use more than one CPU core each.
package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"runtime"

	// The following are all image formats supported as a source
	// for thumbnails.
	_ "image/gif"
	_ "image/png"

	// Additional image formats from the x repository.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrCancelled is returned when one is trying to interact with a stopped
// Thumbnailer.
var ErrCancelled = errors.New("thumbnail operation on cancelled Thumbnailer")

// job is a single shrinking instruction.
type job struct {
	toWidth int
	img     []byte

	// result receives exactly one value once the job is done.
	result chan result
}

type result struct {
	imgData []byte
	err     error
}

// Thumbnailer shrinks images using a pool of workers. It is safe for concurrent
// use.
type Thumbnailer struct {
	cancelContext context.CancelFunc
	done          <-chan struct{}

	work chan job
	group *errgroup.Group
}

// New returns a Thumbnailer ready for use. It will stop working when ctx is done
// or Cancel is called.
func New(ctx context.Context) *Thumbnailer {
	ctx, cancel := context.WithCancel(ctx)

	t := &Thumbnailer{
		cancelContext: cancel,
		done:          ctx.Done(),
		work:          make(chan job),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < runtime.NumCPU(); i++ {
		g.Go(t.worker(gctx))
	}
	t.group = g

	return t
}

// Shrink converts img to a JPEG with width toWidth in pixels while preserving its
// aspect ratio. Images which are already narrower than toWidth are only
// re-encoded.
func (t *Thumbnailer) Shrink(ctx context.Context, img []byte, toWidth int) ([]byte, error) {
	if toWidth <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", toWidth)
	}

	select {
	case <-t.done:
		return nil, ErrCancelled
	default:
	}

	j := job{
		img:     img,
		toWidth: toWidth,
		result:  make(chan result, 1),
	}

	select {
	case t.work <- j:
	case <-t.done:
		return nil, ErrCancelled
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while waiting to send thumbnail job: %w", ctx.Err())
	}

	select {
	case res := <-j.result:
		return res.imgData, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while waiting for thumbnail: %w", ctx.Err())
	}
}

// Cancel stops the Thumbnailer and all of its workers. Users may not use any
// further methods on cancelled thumbnailers.
func (t *Thumbnailer) Cancel() {
	t.cancelContext()
	_ = t.group.Wait()
}

func (t *Thumbnailer) worker(ctx context.Context) func() error {
	return func() error {
		for {
			select {
			case j := <-t.work:
				imgData, err := shrinkImage(j.img, j.toWidth)
				j.result <- result{imgData: imgData, err: err}
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func shrinkImage(imgData []byte, toWidth int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imgData))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	imgRect := img.Bounds()
	imgw := imgRect.Dx()
	imgh := imgRect.Dy()
	if imgw < toWidth {
		toWidth = imgw
	}

	toHeight := toWidth
	if imgw != imgh {
		toHeight = int((float32(imgh) / float32(imgw)) * float32(toWidth))
	}
	if toHeight < 1 {
		toHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, toWidth, toHeight))

	draw.CatmullRom.Scale(
		dst,
		dst.Bounds(),
		img,
		imgRect,
		draw.Over,
		nil,
	)

	var dstJPEG bytes.Buffer
	if err := jpeg.Encode(&dstJPEG, dst, nil); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return dstJPEG.Bytes(), nil
}
