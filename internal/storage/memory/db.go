// Package memory keeps live Resort aggregates for the process. The aggregate
// itself is single-actor; this store supplies the one-lock-per-resort
// serialization callers need when several goroutines reach the same property.
package memory

import (
	"fmt"
	"sync"

	"github.com/Mexidense/la-mar-sala-resort/internal/logger"
	"github.com/Mexidense/la-mar-sala-resort/internal/resort"
)

type Config struct {
	L *logger.Logger
}

type entry struct {
	mu sync.Mutex
	r  *resort.Resort
}

type DB struct {
	mu      sync.Mutex
	l       *logger.Logger
	resorts map[string]*entry
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:       conf.L,
		resorts: make(map[string]*entry),
	}
}

// Add registers a resort under its name. Names are unique per process.
func (db *DB) Add(r *resort.Resort) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.resorts[r.Name()]; exists {
		return fmt.Errorf("resort %q: %w", r.Name(), ErrResortExists)
	}

	db.resorts[r.Name()] = &entry{r: r}

	db.l.LogInfo("Resort %q registered with %d rooms", r.Name(), r.NumberOfRooms())

	return nil
}

func (db *DB) lookup(name string) (*entry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, exists := db.resorts[name]
	if !exists {
		return nil, fmt.Errorf("resort %q: %w", name, ErrResortNotFound)
	}

	return e, nil
}

// Do runs fn against the named resort while holding its lock. Every read or
// mutation of a stored aggregate must go through here: none of the
// aggregate's internal scans are safe against concurrent mutation.
func (db *DB) Do(name string, fn func(r *resort.Resort) error) error {
	e, err := db.lookup(name)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.r)
}
