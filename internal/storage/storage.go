package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Store loads and saves raw season pages.
type Store interface {
	// Load returns the cached page for year. ok is false on a miss.
	Load(ctx context.Context, year int) (page []byte, ok bool, err error)
	Save(ctx context.Context, year int, page []byte) error
}

// FileStore keeps one HTML file per season under a directory.
type FileStore struct {
	dataDir string
}

var cacheFilePattern = regexp.MustCompile(`^passing_(\d{4})\.html$`)

// New creates a FileStore rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*FileStore, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "getting home directory")
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}

	return &FileStore{
		dataDir: dataDir,
	}, nil
}

// Dir returns the resolved cache directory.
func (s *FileStore) Dir() string {
	return s.dataDir
}

// Path returns the cache file for year.
func (s *FileStore) Path(year int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("passing_%d.html", year))
}

// Load reads the cached page. A missing or empty file is a miss.
func (s *FileStore) Load(_ context.Context, year int) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path(year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "reading cached season %d", year)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// Save writes page as the cached copy for year.
func (s *FileStore) Save(_ context.Context, year int, page []byte) error {
	if err := os.WriteFile(s.Path(year), page, 0644); err != nil {
		return errors.Wrapf(err, "writing cached season %d", year)
	}
	return nil
}

// Clear removes the cached page for year. Clearing a season that isn't cached
// is not an error.
func (s *FileStore) Clear(year int) error {
	if err := os.Remove(s.Path(year)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing cached season %d", year)
	}
	return nil
}

// Entry describes one cached season on disk.
type Entry struct {
	Year int    `json:"year"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// List returns the cached seasons, newest first.
func (s *FileStore) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, errors.Wrap(err, "reading cache directory")
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		m := cacheFilePattern.FindStringSubmatch(de.Name())
		if m == nil || de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		entries = append(entries, Entry{
			Year: year,
			Path: filepath.Join(s.dataDir, de.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Year > entries[j].Year
	})
	return entries, nil
}
