// Package cache memoizes solved Results keyed by configuration, the
// way internal/storage memoizes user preferences: a thin BadgerDB
// wrapper with JSON values and non-fatal error handling.
package cache

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"

	"github.com/alfille/foxhole-solve/internal/config"
	"github.com/alfille/foxhole-solve/internal/result"
)

// Key identifies one configuration's cached Result. Two configs with
// the same xlength, ylength, visits, poison, geometry, connection, and
// rigorous mode share a key; since validation forces ylength=xlength
// for a Triangle board, the raw ylength the caller gave does not matter
// there.
type Key string

// KeyFor derives the cache key for c. Rigorous mode changes which
// transposition keys the Search Core considers equal, so it is part
// of the key even though it never appears in the JSON Result.
func KeyFor(c config.Config) Key {
	return Key(fmt.Sprintf("g%d:c%d:x%d:y%d:v%d:p%d:r%t",
		c.Geometry, c.Connection, c.XLength, c.YLength, c.Visits, c.Poison, c.Rigorous))
}

// Cache wraps a *badger.DB opened at a configurable directory. Every
// method treats failures as non-fatal to the caller: Open logs and
// returns a nil *Cache (a valid, always-miss cache) rather than an
// error when the database cannot be opened, since a failed cache is an
// optimization lost, not a correctness dependency.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) the cache database at dir, or at
// databaseDir() if dir is empty. A nil *Cache is returned (and the
// failure logged) when the database cannot be opened at all; callers should
// treat every Cache method as safe to call on a nil receiver.
func Open(dir string) *Cache {
	if dir == "" {
		dir = databaseDir()
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Printf("cache: could not open %s, running without a result cache: %v", dir, err)
		return nil
	}
	return &Cache{db: db}
}

// Close closes the underlying database. Safe to call on a nil Cache.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get looks up key, returning (zero Result, false, nil) on a miss or
// any internal error -- the caller always falls through to running the
// search, it just loses the memoization.
func (c *Cache) Get(key Key) (result.Result, bool, error) {
	if c == nil || c.db == nil {
		return result.Result{}, false, nil
	}

	var r result.Result
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		log.Printf("cache: get %s failed, ignoring cache: %v", key, err)
		return result.Result{}, false, nil
	}
	return r, found, nil
}

// Put stores r under key. A database write failure is logged and
// swallowed, matching Get's non-fatal contract; only a failure to
// marshal r is returned.
func (c *Cache) Put(key Key, r result.Result) error {
	if c == nil || c.db == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		log.Printf("cache: put %s failed: %v", key, err)
	}
	return nil
}
