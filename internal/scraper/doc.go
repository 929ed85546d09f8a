// Package scraper fetches season passing pages from pro-football-reference.com.
//
// A fetch consults the page cache first. On a miss it warms an HTTP session
// against the site root so the target request carries the site's cookies,
// then requests the season page with browser-like headers up to three times.
// If the site keeps refusing plain HTTP clients, the page is loaded through a
// headless Chrome instance instead. Fresh pages are written back to the cache.
package scraper
