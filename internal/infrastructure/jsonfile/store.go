// Package jsonfile is the flat-file storage backend: one JSON array per
// entity under a data directory.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	usersFile    = "users.json"
	bookingsFile = "bookings.json"
	postsFile    = "posts.json"
	packagesFile = "packages.json"
)

// record is implemented by the on-disk shape of every entity.
type record interface {
	key() int64
}

// collection serialises all access to one JSON file. Holding mu across the
// read-modify-write makes id assignment atomic within the process.
type collection[T record] struct {
	mu   sync.Mutex
	path string
}

func (c *collection[T]) load() ([]T, error) {
	b, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(c.path), err)
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save writes through a temp file and rename so readers never observe a
// half-written array.
func (c *collection[T]) save(items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

// read returns a snapshot of the collection.
func (c *collection[T]) read() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// mutate runs fn on the current items and persists what it returns.
// Returning the input slice unchanged with a nil error still rewrites the file.
func (c *collection[T]) mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	out, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(out)
}

// nextID is max(existing)+1, or 1 for an empty collection.
func nextID[T record](items []T) int64 {
	var max int64
	for _, it := range items {
		if k := it.key(); k > max {
			max = k
		}
	}
	return max + 1
}

// Store owns the per-entity collections of one data directory.
type Store struct {
	dir      string
	users    *collection[userRecord]
	bookings *collection[bookingRecord]
	posts    *collection[postRecord]
	packages *collection[packageRecord]
}

// Open prepares dir, creating it and any missing collection file as "[]".
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range []string{usersFile, bookingsFile, postsFile, packagesFile} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(p, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", name, err)
			}
		} else if err != nil {
			return nil, err
		}
	}
	return &Store{
		dir:      dir,
		users:    &collection[userRecord]{path: filepath.Join(dir, usersFile)},
		bookings: &collection[bookingRecord]{path: filepath.Join(dir, bookingsFile)},
		posts:    &collection[postRecord]{path: filepath.Join(dir, postsFile)},
		packages: &collection[packageRecord]{path: filepath.Join(dir, packagesFile)},
	}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Users() *UserRepository       { return &UserRepository{c: s.users} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{c: s.bookings} }
func (s *Store) Posts() *PostRepository       { return &PostRepository{c: s.posts} }
func (s *Store) Packages() *PackageRepository { return &PackageRepository{c: s.packages} }
