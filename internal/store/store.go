// Package store persists each collection as a single JSON array file under a
// data directory. Every read parses the whole file and every save rewrites it;
// there is no locking or versioning, so concurrent writers to the same
// collection race last-write-wins at the file level. The deployment assumes a
// single writer per collection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/example/jhelumkesar/internal/models"
)

// Store reads and writes whole JSON collections on local disk.
type Store struct {
	dir string
}

// Open ensures the data directory exists and returns a Store bound to it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store is bound to.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readCollection loads an entire collection. A missing file is created with
// the empty default; a corrupt file yields the default and a warning, and is
// left on disk untouched.
func readCollection[T any](s *Store, collection string) ([]T, error) {
	path := s.path(collection)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := writeCollection[T](s, collection, []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logrus.WithFields(logrus.Fields{
			"collection": collection,
			"path":       path,
		}).Warnf("malformed collection file, using empty default: %v", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func writeCollection[T any](s *Store, collection string, items []T) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Users() ([]models.User, error) {
	return readCollection[models.User](s, "users")
}

func (s *Store) SaveUsers(users []models.User) error {
	return writeCollection(s, "users", users)
}

func (s *Store) Orders() ([]models.Order, error) {
	return readCollection[models.Order](s, "orders")
}

func (s *Store) SaveOrders(orders []models.Order) error {
	return writeCollection(s, "orders", orders)
}

func (s *Store) Leads() ([]models.Lead, error) {
	return readCollection[models.Lead](s, "leads")
}

func (s *Store) SaveLeads(leads []models.Lead) error {
	return writeCollection(s, "leads", leads)
}

func (s *Store) Reviews() ([]models.Review, error) {
	return readCollection[models.Review](s, "reviews")
}

func (s *Store) SaveReviews(reviews []models.Review) error {
	return writeCollection(s, "reviews", reviews)
}
