// Package store persists named decks in an embedded pebble database, one
// JSON document per deck keyed by a ksuid.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/youruser/kcgdeck/internal/deck"
)

var ErrNotFound = errors.New("deck not found")

// StoredDeck is a deck at rest, with its store id and last write time.
type StoredDeck struct {
	ID        string    `json:"id"`
	Deck      deck.Deck `json:"deck"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeckStore struct {
	db *pebble.DB
}

func Open(path string) (*DeckStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open deck store: %w", err)
	}
	return &DeckStore{db: db}, nil
}

func (s *DeckStore) Close() error {
	return s.db.Close()
}

// Save stores d under a fresh id and returns it.
func (s *DeckStore) Save(d deck.Deck) (string, error) {
	id := ksuid.New().String()
	if err := s.Put(id, d); err != nil {
		return "", err
	}
	return id, nil
}

// Put stores d under an existing id, overwriting any previous version.
func (s *DeckStore) Put(id string, d deck.Deck) error {
	doc := StoredDeck{ID: id, Deck: d, UpdatedAt: time.Now().UTC()}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal deck %s: %w", id, err)
	}
	if err := s.db.Set([]byte(id), data, pebble.Sync); err != nil {
		return fmt.Errorf("write deck %s: %w", id, err)
	}
	return nil
}

func (s *DeckStore) Get(id string) (StoredDeck, error) {
	data, closer, err := s.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return StoredDeck{}, ErrNotFound
		}
		return StoredDeck{}, fmt.Errorf("read deck %s: %w", id, err)
	}
	defer closer.Close()

	var doc StoredDeck
	if err := json.Unmarshal(data, &doc); err != nil {
		return StoredDeck{}, fmt.Errorf("unmarshal deck %s: %w", id, err)
	}
	return doc, nil
}

// List returns every stored deck in key order (ksuids sort by creation time).
func (s *DeckStore) List() ([]StoredDeck, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer iter.Close()

	out := []StoredDeck{}
	for iter.First(); iter.Valid(); iter.Next() {
		var doc StoredDeck
		if err := json.Unmarshal(iter.Value(), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal deck %s: %w", iter.Key(), err)
		}
		out = append(out, doc)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return out, nil
}

func (s *DeckStore) Delete(id string) error {
	// pebble deletes are blind; check existence so callers can 404
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.db.Delete([]byte(id), pebble.Sync); err != nil {
		return fmt.Errorf("delete deck %s: %w", id, err)
	}
	return nil
}
