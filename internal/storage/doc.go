// Package storage caches raw season pages so repeat runs skip the network.
//
// The default FileStore keeps one plain HTML file per season
// (passing_YEAR.html) under a data directory, ~/.cache/passing-stats unless
// configured otherwise. RedisStore keeps the same pages in Redis for setups
// that share a cache between machines. Entries never expire; a cached page
// is trusted until it is cleared by hand.
package storage
