package deck

import (
	"fmt"
	"strings"
)

// ExportText renders the deck as a plain "Nx<id>" list, one line per unique
// card, in entry order. The leader is always the first card line.
func ExportText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	if d.Leader != "" {
		lines = append(lines, "1x"+d.Leader)
	}
	for _, e := range d.Entries {
		lines = append(lines, fmt.Sprintf("%dx%s", e.Count, e.Card.CardID))
	}
	return strings.Join(lines, "\n")
}
