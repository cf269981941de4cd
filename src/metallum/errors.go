package metallum

import (
	"errors"
	"fmt"
)

// ErrDataNotFound is returned when the catalog has nothing for the query. For
// example a search without results or a song which is not in the release.
var ErrDataNotFound = errors.New("data not found in the catalog")

// ErrTimeout is returned by the BrowserClient when a page element did not show up
// in time.
var ErrTimeout = errors.New("timed out waiting for the page")

// ErrImageTooBig is returned when an image has been found but it is deemed too big
// for the server to handle.
var ErrImageTooBig = errors.New("image is too big")

// ErrStructure matches every StructureError with errors.Is.
var ErrStructure = errors.New("unexpected page structure")

// StructureError is returned when a page or a fragment does not have the shape this
// package expects. It usually means the catalog has changed its markup.
type StructureError struct {
	// What describes what was expected and not found.
	What string

	// Fragment is the offending HTML, possibly shortened.
	Fragment string
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("scraping structure error: %s", e.What)
	}
	return fmt.Sprintf("scraping structure error: %s in `%s`", e.What, e.Fragment)
}

// Is makes errors.Is(err, ErrStructure) true for all structure errors.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

func newStructureError(what, fragment string) *StructureError {
	const maxFragment = 200

	fragment = collapseSpaces(fragment)
	if len(fragment) > maxFragment {
		fragment = fragment[:maxFragment] + "..."
	}

	return &StructureError{
		What:     what,
		Fragment: fragment,
	}
}

// UpstreamError is an error reported by the catalog itself in its JSON responses.
type UpstreamError struct {
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog returned an error: %s", e.Message)
}
