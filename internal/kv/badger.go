// ABOUTME: Badger-backed key-value medium
// ABOUTME: Default local storage backend for the workout log

package kv

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
)

// BadgerMedium implements Medium on a local badger database.
type BadgerMedium struct {
	db *badger.DB
}

var _ Medium = (*BadgerMedium)(nil)

// OpenBadger opens (or creates) a badger database at the given directory.
func OpenBadger(path string) (*BadgerMedium, error) {
	if err := os.MkdirAll(path, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return nil, fmt.Errorf("create directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerMedium{db: db}, nil
}

func (m *BadgerMedium) Get(key string) (string, error) {
	var out []byte
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return string(out), nil
}

func (m *BadgerMedium) Set(key, value string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (m *BadgerMedium) Delete(key string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (m *BadgerMedium) Close() error {
	return m.db.Close()
}
