package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/kcgdeck/internal/deckcode"
)

var encodeSimple bool

// encodeCmd packs a flattened identifier list into a deck code.
var encodeCmd = &cobra.Command{
	Use:   "encode <card-id>...",
	Short: "Encode card ids into a deck code",
	Long: `Encode a flattened card list (one argument per physical copy) into a
deck code. Arguments are encoded in the order given.

Example:
  kcgdeck encode OP01-001 OP01-016 OP01-016`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if encodeSimple {
			fmt.Println(deckcode.EncodeSimple(args))
			return
		}
		code, err := deckcode.EncodePacked(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(code)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeSimple, "simple", false, "emit the slash-delimited simple form")
}
