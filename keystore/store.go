package keystore

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketSeeds = []byte("seeds")

// Store persists encrypted seeds in a bbolt database, keyed by account
// name. Seed bytes are encrypted before they reach the store; the store
// never sees plaintext key material.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the keystore database at dbPath. The parent
// directory is created if it does not exist.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("keystore: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("keystore: open bolt db: %w", err)
	}

	err = db.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(bucketSeeds)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("keystore: create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveSeed stores an encrypted seed under name. Fails with
// ErrAccountExists if the name is taken.
func (s *Store) SaveSeed(name string, encrypted []byte) error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		b := btx.Bucket(bucketSeeds)
		if b.Get([]byte(name)) != nil {
			return fmt.Errorf("%w: %q", ErrAccountExists, name)
		}
		return b.Put([]byte(name), encrypted)
	})
}

// LoadSeed returns the encrypted seed stored under name.
func (s *Store) LoadSeed(name string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(btx *bbolt.Tx) error {
		v := btx.Bucket(bucketSeeds).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

// DeleteSeed removes the encrypted seed stored under name.
func (s *Store) DeleteSeed(name string) error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		b := btx.Bucket(bucketSeeds)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}

// ListNames returns all stored account names in key order.
func (s *Store) ListNames() ([]string, error) {
	var names []string
	err := s.db.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(bucketSeeds).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
