package metallum

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// ChromeOptions configures the browser started by NewChromeSession.
type ChromeOptions struct {
	// ExecPath is the path to the Chrome or Chromium binary. When empty the usual
	// locations are searched.
	ExecPath string

	// Headless runs the browser without a window.
	Headless bool

	// UserAgent overrides the browser's user agent when not empty.
	UserAgent string
}

// ChromeSession is a Session backed by a Chrome tab controlled over the DevTools
// protocol.
type ChromeSession struct {
	tabCtx        context.Context
	cancelTab     context.CancelFunc
	cancelAllocer context.CancelFunc
}

// NewChromeSession starts a new browser and opens a tab in it. The browser lives
// until Close is called or parent is cancelled.
func NewChromeSession(parent context.Context, opts ChromeOptions) (*ChromeSession, error) {
	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, cancelAllocer := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// The first Run starts the browser.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAllocer()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &ChromeSession{
		tabCtx:        tabCtx,
		cancelTab:     cancelTab,
		cancelAllocer: cancelAllocer,
	}, nil
}

// run executes actions in the tab while honouring the deadline and cancellation of
// ctx as well as the tab's own lifetime.
func (s *ChromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.tabCtx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// SetCookie implements Session.
func (s *ChromeSession) SetCookie(ctx context.Context, name, value, domain string) error {
	return s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return network.SetCookie(name, value).
			WithDomain(domain).
			WithPath("/").
			Do(ctx)
	}))
}

// DeleteCookie implements Session.
func (s *ChromeSession) DeleteCookie(ctx context.Context, name, domain string) error {
	return s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return network.DeleteCookies(name).
			WithDomain(domain).
			WithPath("/").
			Do(ctx)
	}))
}

// Navigate implements Session.
func (s *ChromeSession) Navigate(ctx context.Context, URL string) error {
	return s.run(ctx, chromedp.Navigate(URL))
}

// WaitReady implements Session.
func (s *ChromeSession) WaitReady(ctx context.Context, selector string) error {
	return s.run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
}

// OuterHTML implements Session.
func (s *ChromeSession) OuterHTML(ctx context.Context, selector string) (string, error) {
	var markup string
	err := s.run(ctx, chromedp.OuterHTML(selector, &markup, chromedp.ByQuery))
	return markup, err
}

// Click implements Session.
func (s *ChromeSession) Click(ctx context.Context, selector string) error {
	return s.run(ctx, chromedp.Click(selector, chromedp.ByQuery))
}

// WaitTextReplaced implements Session.
func (s *ChromeSession) WaitTextReplaced(
	ctx context.Context,
	selector string,
	placeholder string,
) error {
	expr := fmt.Sprintf(
		`(function() {
			const el = document.querySelector(%s);
			return el !== null && !el.innerText.includes(%s);
		})()`,
		strconv.Quote(selector),
		strconv.Quote(placeholder),
	)

	var replaced bool
	return s.run(ctx, chromedp.Poll(expr, &replaced))
}

// Text implements Session.
func (s *ChromeSession) Text(ctx context.Context, selector string) (string, error) {
	var text string
	err := s.run(ctx, chromedp.Text(selector, &text, chromedp.ByQuery))
	return text, err
}

// Close implements Session. It closes the tab and stops the browser.
func (s *ChromeSession) Close() error {
	err := chromedp.Cancel(s.tabCtx)
	s.cancelTab()
	s.cancelAllocer()
	return err
}
