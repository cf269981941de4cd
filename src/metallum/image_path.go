package metallum

import "strings"

// ImageKind is the kind of image stored by the catalog.
type ImageKind int

// The kinds of images found in the catalog.
const (
	CoverImage ImageKind = iota
	LogoImage
)

// ImagePath returns the path of an image on the catalog site. Images are sharded
// into directories by the first four characters of their ID. The logo of artist
// 528471 is at /images/5/2/8/4/528471_logo.jpg for example.
func ImagePath(id string, kind ImageKind) string {
	prefix := id
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	var suffix string
	if kind == LogoImage {
		suffix = "_logo"
	}

	return "/images/" + strings.Join(strings.Split(prefix, ""), "/") +
		"/" + id + suffix + ".jpg"
}
