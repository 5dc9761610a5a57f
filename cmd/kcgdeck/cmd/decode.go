package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youruser/kcgdeck/internal/deckcode"
)

// decodeCmd unpacks a deck code and prints its identifier tally.
var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a deck code into card ids",
	Long: `Decode a packed ("KCG-...") or simple ("AA-1/AA-1") deck code and
print one "Nx<id>" line per unique card, in code order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		code := strings.TrimSpace(args[0])

		var ids []string
		if strings.HasPrefix(code, deckcode.PackedPrefix) {
			decoded, err := deckcode.DecodePacked(code)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			ids = decoded
		} else {
			if verr := deckcode.ValidateSimpleCode(code); verr != nil {
				fmt.Fprintln(os.Stderr, "Error:", verr)
				os.Exit(1)
			}
			ids = strings.Split(code, "/")
		}

		counts := map[string]int{}
		var order []string
		for _, id := range ids {
			if counts[id] == 0 {
				order = append(order, id)
			}
			counts[id]++
		}
		for _, id := range order {
			fmt.Printf("%dx%s\n", counts[id], id)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
