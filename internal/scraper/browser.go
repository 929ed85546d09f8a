package scraper

import (
	"context"
	"net/http"
	"os/exec"
	"sync"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"
)

// chromeBinaries are the executable names probed for a local Chrome.
var chromeBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// Chrome loads pages in headless Chrome through the DevTools protocol.
type Chrome struct {
	// RemoteURL, when set, is a DevTools websocket/http endpoint of an already
	// running browser; otherwise a local binary is started.
	RemoteURL string
	lookPath  func(string) (string, error)
}

// NewChrome returns a Chrome fallback. An empty remoteURL means a local binary.
func NewChrome(remoteURL string) *Chrome {
	return &Chrome{RemoteURL: remoteURL, lookPath: exec.LookPath}
}

// Available reports whether a browser can be reached at all.
func (c *Chrome) Available() bool {
	if c.RemoteURL != "" {
		return true
	}
	return c.localBinary() != ""
}

func (c *Chrome) localBinary() string {
	look := c.lookPath
	if look == nil {
		look = exec.LookPath
	}
	for _, name := range chromeBinaries {
		if p, err := look(name); err == nil {
			return p
		}
	}
	return ""
}

// Fetch navigates to url and returns the rendered document.
func (c *Chrome) Fetch(ctx context.Context, url string) (string, error) {
	var (
		allocCtx context.Context
		cancel   context.CancelFunc
	)
	if c.RemoteURL != "" {
		allocCtx, cancel = chromedp.NewRemoteAllocator(ctx, c.RemoteURL)
	} else {
		bin := c.localBinary()
		if bin == "" {
			return "", ErrBrowserUnavailable
		}
		allocCtx, cancel = chromedp.NewExecAllocator(ctx, execOptions(bin)...)
	}
	defer cancel()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var status documentStatus
	chromedp.ListenTarget(tabCtx, status.observe)

	var page string
	err := chromedp.Run(tabCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &page, chromedp.ByQuery),
	)
	if err != nil {
		return "", errors.Wrap(err, "loading page in headless browser")
	}
	if err := status.err(); err != nil {
		return "", err
	}
	return page, nil
}

func execOptions(bin string) []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(bin),
		chromedp.UserAgent(UserAgent),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
}

// documentStatus records the HTTP status of the last document response a
// tab received. Redirects produce several; the final one wins.
type documentStatus struct {
	mu     sync.Mutex
	status int64
}

func (d *documentStatus) observe(ev interface{}) {
	e, ok := ev.(*network.EventResponseReceived)
	if !ok || e.Type != network.ResourceTypeDocument || e.Response == nil {
		return
	}
	d.mu.Lock()
	d.status = e.Response.Status
	d.mu.Unlock()
}

// err fails any non-200 document. No response at all is not an error.
func (d *documentStatus) err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status == 0 || d.status == http.StatusOK {
		return nil
	}
	return errors.Newf("browser got HTTP %d", d.status)
}
