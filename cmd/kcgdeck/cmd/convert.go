package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youruser/kcgdeck/internal/deckcode"
)

// convertCmd translates between the two code forms. Conversion is purely
// structural; no catalog is consulted.
var convertCmd = &cobra.Command{
	Use:   "convert <code>",
	Short: "Convert between packed and simple deck codes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		code := strings.TrimSpace(args[0])

		if strings.HasPrefix(code, deckcode.PackedPrefix) {
			ids, err := deckcode.DecodePacked(code)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			fmt.Println(deckcode.EncodeSimple(ids))
			return
		}

		if verr := deckcode.ValidateSimpleCode(code); verr != nil {
			fmt.Fprintln(os.Stderr, "Error:", verr)
			os.Exit(1)
		}
		out, err := deckcode.EncodePacked(strings.Split(code, "/"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
