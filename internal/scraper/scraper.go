package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/extract"
	"github.com/pfrederiksen/passing-stats/internal/logger"
	"github.com/pfrederiksen/passing-stats/internal/storage"
	"golang.org/x/net/publicsuffix"
)

const (
	BaseURL   = "https://www.pro-football-reference.com"
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	Attempts       = 3
	WarmupTimeout  = 15 * time.Second
	RequestTimeout = 20 * time.Second
	BrowserTimeout = 25 * time.Second
)

var (
	ErrFetchFailed        = errors.New("failed to fetch season page")
	ErrBrowserUnavailable = errors.New("headless browser unavailable")
)

// Browser loads a page through something that can pass the site's bot checks.
type Browser interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Scraper fetches season pages, caching them in a storage.Store.
type Scraper struct {
	client  *http.Client
	baseURL string
	store   storage.Store
	browser Browser
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithStore sets the page cache. Without one every fetch hits the network.
func WithStore(store storage.Store) Option {
	return func(s *Scraper) { s.store = store }
}

// WithBrowser sets the fallback used after plain HTTP gives up. nil disables it.
func WithBrowser(b Browser) Option {
	return func(s *Scraper) { s.browser = b }
}

// WithBaseURL points the scraper at another host, for tests.
func WithBaseURL(u string) Option {
	return func(s *Scraper) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client. Its cookie jar, if any, is used
// for the session warm-up.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) { s.client = c }
}

// New creates a Scraper with a cookie-keeping HTTP client.
func New(opts ...Option) *Scraper {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	s := &Scraper{
		client:  &http.Client{Jar: jar},
		baseURL: BaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeasonURL returns the passing page for year.
func (s *Scraper) SeasonURL(year int) string {
	return fmt.Sprintf("%s/years/%d/passing.htm", s.baseURL, year)
}

// Fetch returns the raw passing page for year.
func (s *Scraper) Fetch(ctx context.Context, year int) (string, error) {
	start := time.Now()
	defer func() { logger.RecordTiming("fetch.duration", time.Since(start)) }()

	if page, ok := s.loadCached(ctx, year); ok {
		return page, nil
	}

	url := s.SeasonURL(year)
	logger.Info("Fetching season page", logger.Fields{"year": year, "url": url})

	page, err := s.fetchHTTP(ctx, url)
	if err != nil {
		logger.Warn("Plain HTTP fetch failed", logger.Fields{"url": url, "attempts": Attempts}, err)

		page, err = s.fetchBrowser(ctx, url, err)
		if err != nil {
			return "", err
		}
		// a bot check can render fine in the browser; keep it out of the cache
		if !extract.HasTable(page) {
			logger.Warn("Browser page has no passing table, not caching it", logger.Fields{"year": year, "url": url}, nil)
			return page, nil
		}
	}

	s.saveCached(ctx, year, page)
	return page, nil
}

func (s *Scraper) loadCached(ctx context.Context, year int) (string, bool) {
	if s.store == nil {
		return "", false
	}
	data, ok, err := s.store.Load(ctx, year)
	if err != nil {
		logger.Warn("Reading page cache failed", logger.Fields{"year": year}, err)
		return "", false
	}
	if !ok {
		logger.IncrCounter("cache.miss")
		return "", false
	}
	logger.IncrCounter("cache.hit")
	logger.Debug("Using cached season page", logger.Fields{"year": year, "bytes": len(data)})
	return string(data), true
}

// saveCached is best effort; a page that can't be cached is still returned.
func (s *Scraper) saveCached(ctx context.Context, year int, page string) {
	if s.store == nil || page == "" {
		return
	}
	if err := s.store.Save(ctx, year, []byte(page)); err != nil {
		logger.Warn("Writing page cache failed", logger.Fields{"year": year}, err)
	}
}

// fetchHTTP warms the session on the site root, then tries url up to
// Attempts times.
func (s *Scraper) fetchHTTP(ctx context.Context, url string) (string, error) {
	if _, err := s.get(ctx, s.baseURL+"/", WarmupTimeout); err != nil {
		logger.Debug("Session warm-up failed", logger.Fields{"error": err.Error()})
	}

	var lastErr error
	for attempt := 1; attempt <= Attempts; attempt++ {
		logger.IncrCounter("http.attempt")
		page, err := s.get(ctx, url, RequestTimeout)
		if err == nil {
			return page, nil
		}
		logger.IncrCounter("http.failure")
		logger.Debug("Season request failed", logger.Fields{"attempt": attempt, "error": err.Error()})
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (s *Scraper) fetchBrowser(ctx context.Context, url string, httpErr error) (string, error) {
	if s.browser == nil {
		return "", errors.Mark(errors.Wrapf(httpErr,
			"%s; try once more, or enable the headless browser fallback (install Chrome/Chromium or pass --chrome-url)", ErrFetchFailed), ErrFetchFailed)
	}

	logger.IncrCounter("browser.attempt")
	bctx, cancel := context.WithTimeout(ctx, BrowserTimeout)
	defer cancel()

	page, err := s.browser.Fetch(bctx, url)
	if errors.Is(err, ErrBrowserUnavailable) {
		return "", errors.Mark(errors.Wrapf(httpErr,
			"%s; try once more or install Chrome/Chromium (or pass --chrome-url) and fetch again", ErrFetchFailed), ErrFetchFailed)
	}
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "%s after %d HTTP attempts (%v)", ErrFetchFailed, Attempts, httpErr), ErrFetchFailed)
	}
	return page, nil
}

// get performs one GET with browser-like headers and returns the decoded body
// of a 200 response.
func (s *Scraper) get(ctx context.Context, url string, timeout time.Duration) (string, error) {
	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	setBrowserHeaders(req, s.baseURL+"/")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetching page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("HTTP %d", resp.StatusCode)
	}

	body, err := readBody(resp)
	if err != nil {
		return "", errors.Wrap(err, "reading body")
	}
	return string(body), nil
}

func setBrowserHeaders(req *http.Request, referer string) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Referer", referer)
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}
