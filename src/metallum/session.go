package metallum

import "context"

//counterfeiter:generate . Session

// Session is a single browser tab which BrowserClient drives. Selectors are CSS
// selectors. Implementations do not have to be safe for concurrent use.
type Session interface {
	// SetCookie sets a cookie for domain which will be sent with all further
	// navigations.
	SetCookie(ctx context.Context, name, value, domain string) error

	// DeleteCookie removes the cookie with name for domain, if there is one.
	DeleteCookie(ctx context.Context, name, domain string) error

	// Navigate loads URL and waits for the document to load.
	Navigate(ctx context.Context, URL string) error

	// WaitReady blocks until an element matching selector is present in the page or
	// until ctx is done.
	WaitReady(ctx context.Context, selector string) error

	// OuterHTML returns the markup of the first element matching selector.
	OuterHTML(ctx context.Context, selector string) (string, error)

	// Click clicks on the first element matching selector.
	Click(ctx context.Context, selector string) error

	// WaitTextReplaced blocks until the text of the first element matching selector
	// no longer contains placeholder or until ctx is done.
	WaitTextReplaced(ctx context.Context, selector, placeholder string) error

	// Text returns the rendered text of the first element matching selector.
	Text(ctx context.Context, selector string) (string, error)

	// Close releases the browser resources.
	Close() error
}
