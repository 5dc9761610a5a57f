package deckcode

import (
	"github.com/youruser/kcgdeck/internal/cards"
)

// SortForEncode puts a flattened card sequence into the canonical encoding
// order (kind, color group, natural id). Two decks holding the same cards
// produce the same code after this pass regardless of build order.
func SortForEncode(cs []cards.Card) {
	cards.SortStable(cs)
}

// FlattenIDs projects a card sequence to its identifier sequence.
func FlattenIDs(cs []cards.Card) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.CardID
	}
	return ids
}
