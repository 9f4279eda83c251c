// Package storage keeps named games in a BadgerDB key-value store.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

const gamePrefix = "game/"

// Store wraps BadgerDB for saved games.
type Store struct {
	db *badger.DB
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening game store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("empty game name: %w", errors.ErrInvalidConfig)
	}
	return []byte(gamePrefix + name), nil
}

// Save stores g under name, replacing any game already saved there.
func (s *Store) Save(name string, g *game.Game) error {
	return s.SaveSnapshot(NewSnapshot(name, g))
}

// SaveSnapshot stores snap under its name.
func (s *Store) SaveSnapshot(snap *Snapshot) error {
	key, err := gameKey(snap.Name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// LoadSnapshot returns the snapshot saved under name. A missing game
// gives an error wrapping ErrGameNotFound.
func (s *Store) LoadSnapshot(name string) (*Snapshot, error) {
	key, err := gameKey(name)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Load rebuilds the game saved under name.
func (s *Store) Load(name string, rules *engine.Rules) (*game.Game, error) {
	snap, err := s.LoadSnapshot(name)
	if err != nil {
		return nil, err
	}
	return snap.Game(rules)
}

// Delete removes the game saved under name.
func (s *Store) Delete(name string) error {
	key, err := gameKey(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// List returns the names of all saved games in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), gamePrefix))
		}
		return nil
	})
	return names, err
}
