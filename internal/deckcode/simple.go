package deckcode

import (
	"strings"

	"github.com/youruser/kcgdeck/internal/cards"
	"github.com/youruser/kcgdeck/internal/deck"
)

// CardFinder is the catalog lookup decoded ids are resolved against.
// *cards.Catalog satisfies it.
type CardFinder interface {
	Find(id string) (cards.Card, bool)
}

// EncodeSimple joins the flattened identifier sequence with slashes, one
// token per copy. Total: any sequence encodes.
func EncodeSimple(ids []string) string {
	return strings.Join(ids, "/")
}

// ResolveIDs tallies copies per identifier and resolves each distinct id
// against the catalog. Unknown ids are dropped from the result and reported
// in notFound rather than failing the whole import. Entries keep
// first-appearance order.
func ResolveIDs(ids []string, catalog CardFinder) (entries []deck.Entry, notFound []string) {
	counts := map[string]int{}
	var order []string
	for _, id := range ids {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	for _, id := range order {
		card, ok := catalog.Find(id)
		if !ok {
			notFound = append(notFound, id)
			continue
		}
		entries = append(entries, deck.Entry{Card: card, Count: counts[id]})
	}
	return entries, notFound
}

// DecodeSimple splits a slash-delimited code and resolves it. Blank tokens
// from stray slashes are ignored; the decode itself never fails.
func DecodeSimple(code string, catalog CardFinder) (entries []deck.Entry, notFound []string) {
	var ids []string
	for _, tok := range strings.Split(code, "/") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			ids = append(ids, tok)
		}
	}
	return ResolveIDs(ids, catalog)
}
