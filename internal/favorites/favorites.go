// Package favorites provides JSON-based persistence for saved city queries.
//
// Favorites are stored in a single favorites.json file under the data
// directory (default ~/.local/share/weather-cli). Queries keep their
// verbosity suffix, so "london++" is saved and queried at full detail.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const fileName = "favorites.json"

// Store handles persistence of favorite city queries
type Store struct {
	dataDir string
}

// favoritesFile is the on-disk format
type favoritesFile struct {
	UpdatedAt string   `json:"updated_at"`
	Queries   []string `json:"queries"`
}

// New creates a new Store rooted at dataDir
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, fileName)
}

// List returns the saved queries in sorted order
func (s *Store) List() ([]string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading favorites: %w", err)
	}

	var f favoritesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing favorites: %w", err)
	}

	sort.Strings(f.Queries)
	return f.Queries, nil
}

// Add saves a query. Returns false when it was already saved.
func (s *Store) Add(query string) (bool, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false, fmt.Errorf("empty query")
	}

	queries, err := s.List()
	if err != nil {
		return false, err
	}

	for _, q := range queries {
		if q == query {
			return false, nil
		}
	}

	return true, s.save(append(queries, query))
}

// Remove deletes a query. Returns false when it was not saved.
func (s *Store) Remove(query string) (bool, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	queries, err := s.List()
	if err != nil {
		return false, err
	}

	for i, q := range queries {
		if q == query {
			return true, s.save(append(queries[:i], queries[i+1:]...))
		}
	}

	return false, nil
}

// save writes the favorites file via a temp file and rename
func (s *Store) save(queries []string) error {
	sort.Strings(queries)

	f := favoritesFile{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Queries:   queries,
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("replacing favorites: %w", err)
	}

	return nil
}
