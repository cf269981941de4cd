package webserver

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . ImageFetcher

// ImageFetcher downloads images from the catalog.
type ImageFetcher interface {
	LogoImage(ctx context.Context, artistID string) ([]byte, error)
	CoverImage(ctx context.Context, releaseID string) ([]byte, error)
}

//counterfeiter:generate . Thumbnailer

// Thumbnailer makes small versions of images.
type Thumbnailer interface {
	Shrink(ctx context.Context, img []byte, toWidth int) ([]byte, error)
}

//counterfeiter:generate . CookieHolder

// CookieHolder stores the anti-bot cookie used by the browser backed finder.
type CookieHolder interface {
	SetCookie(value string)
}
