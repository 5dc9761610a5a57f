package cards

import "sort"

// Catalog is the authoritative set of cards known to the application.
// Lookup is by CardID; the backing slice keeps load order.
type Catalog struct {
	all  []Card
	byID map[string]Card
}

func NewCatalog(all []Card) *Catalog {
	c := &Catalog{
		all:  all,
		byID: make(map[string]Card, len(all)),
	}
	for _, card := range all {
		// first occurrence wins; parallel reprints share an id
		if _, ok := c.byID[card.CardID]; !ok {
			c.byID[card.CardID] = card
		}
	}
	return c
}

// Find returns the card for id, or ok=false when the catalog has no such card.
func (c *Catalog) Find(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

func (c *Catalog) All() []Card {
	return c.all
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// SortStable orders cards by kind, then color group, then id in natural
// order. This is the canonical ordering used before a deck is encoded.
func SortStable(cs []Card) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Type != cs[j].Type {
			return cs[i].Type < cs[j].Type
		}
		if cs[i].Color != cs[j].Color {
			return cs[i].Color < cs[j].Color
		}
		return NaturalLess(cs[i].CardID, cs[j].CardID)
	})
}
