// Package deck holds the in-memory deck model: an ordered multiset of cards
// with unique ids and positive copy counts, mutated through a closed set of
// operations.
package deck

import (
	"errors"
	"fmt"

	"github.com/youruser/kcgdeck/internal/cards"
)

var (
	ErrNotInDeck = errors.New("card not in deck")
	ErrCopyLimit = errors.New("copy limit reached")
	ErrDeckFull  = errors.New("deck is full")
	ErrBadCount  = errors.New("count out of range")
)

// Limits bounds copies per unique card and total deck size.
type Limits struct {
	MaxCopies int `json:"max_copies" yaml:"max_copies"`
	MaxTotal  int `json:"max_total" yaml:"max_total"`
}

var DefaultLimits = Limits{MaxCopies: 4, MaxTotal: 50}

// Entry is one unique card with its copy count. Count is always positive:
// setting a count to zero removes the entry.
type Entry struct {
	Card  cards.Card `json:"card"`
	Count int        `json:"count"`
}

type Deck struct {
	Name    string  `json:"name"`
	Leader  string  `json:"leader"`
	Entries []Entry `json:"entries"`
}

// Mutation is the closed set of deck edits. Exactly one of the concrete
// types below is applied per call to Apply.
type Mutation interface {
	isMutation()
}

type Add struct{ Card cards.Card }
type Remove struct{ ID string }
type Increment struct{ ID string }
type Decrement struct{ ID string }
type SetCount struct {
	ID    string
	Count int
}
type Clear struct{}

func (Add) isMutation()       {}
func (Remove) isMutation()    {}
func (Increment) isMutation() {}
func (Decrement) isMutation() {}
func (SetCount) isMutation()  {}
func (Clear) isMutation()     {}

func (d *Deck) indexOf(id string) int {
	for i := range d.Entries {
		if d.Entries[i].Card.CardID == id {
			return i
		}
	}
	return -1
}

// Size is the total number of physical copies in the deck.
func (d *Deck) Size() int {
	n := 0
	for _, e := range d.Entries {
		n += e.Count
	}
	return n
}

// Count returns the copy count for id, zero when absent.
func (d *Deck) Count(id string) int {
	if i := d.indexOf(id); i >= 0 {
		return d.Entries[i].Count
	}
	return 0
}

func (d *Deck) removeAt(i int) {
	d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
}

// Apply performs one mutation under the given limits. On error the deck is
// unchanged.
func (d *Deck) Apply(m Mutation, lim Limits) error {
	switch op := m.(type) {
	case Add:
		i := d.indexOf(op.Card.CardID)
		if i < 0 {
			if lim.MaxTotal > 0 && d.Size()+1 > lim.MaxTotal {
				return fmt.Errorf("add %s: %w", op.Card.CardID, ErrDeckFull)
			}
			d.Entries = append(d.Entries, Entry{Card: op.Card, Count: 1})
			return nil
		}
		return d.bump(i, lim)
	case Remove:
		i := d.indexOf(op.ID)
		if i < 0 {
			return fmt.Errorf("remove %s: %w", op.ID, ErrNotInDeck)
		}
		d.removeAt(i)
		return nil
	case Increment:
		i := d.indexOf(op.ID)
		if i < 0 {
			return fmt.Errorf("increment %s: %w", op.ID, ErrNotInDeck)
		}
		return d.bump(i, lim)
	case Decrement:
		i := d.indexOf(op.ID)
		if i < 0 {
			return fmt.Errorf("decrement %s: %w", op.ID, ErrNotInDeck)
		}
		d.Entries[i].Count--
		if d.Entries[i].Count == 0 {
			d.removeAt(i)
		}
		return nil
	case SetCount:
		i := d.indexOf(op.ID)
		if i < 0 {
			return fmt.Errorf("set count %s: %w", op.ID, ErrNotInDeck)
		}
		if op.Count == 0 {
			d.removeAt(i)
			return nil
		}
		if op.Count < 0 || (lim.MaxCopies > 0 && op.Count > lim.MaxCopies) {
			return fmt.Errorf("set count %s to %d: %w", op.ID, op.Count, ErrBadCount)
		}
		if lim.MaxTotal > 0 && d.Size()-d.Entries[i].Count+op.Count > lim.MaxTotal {
			return fmt.Errorf("set count %s to %d: %w", op.ID, op.Count, ErrDeckFull)
		}
		d.Entries[i].Count = op.Count
		return nil
	case Clear:
		d.Entries = nil
		return nil
	default:
		return fmt.Errorf("unknown mutation %T", m)
	}
}

func (d *Deck) bump(i int, lim Limits) error {
	id := d.Entries[i].Card.CardID
	if lim.MaxCopies > 0 && d.Entries[i].Count+1 > lim.MaxCopies {
		return fmt.Errorf("add %s: %w", id, ErrCopyLimit)
	}
	if lim.MaxTotal > 0 && d.Size()+1 > lim.MaxTotal {
		return fmt.Errorf("add %s: %w", id, ErrDeckFull)
	}
	d.Entries[i].Count++
	return nil
}

// Flatten expands the deck to one identifier per physical copy, in entry
// order. This is the sequence the codecs consume.
func (d *Deck) Flatten() []string {
	ids := make([]string, 0, d.Size())
	for _, e := range d.Entries {
		for i := 0; i < e.Count; i++ {
			ids = append(ids, e.Card.CardID)
		}
	}
	return ids
}

// FlattenCards is Flatten keeping the full card records, for callers that
// sort by card attributes before encoding.
func (d *Deck) FlattenCards() []cards.Card {
	cs := make([]cards.Card, 0, d.Size())
	for _, e := range d.Entries {
		for i := 0; i < e.Count; i++ {
			cs = append(cs, e.Card)
		}
	}
	return cs
}
