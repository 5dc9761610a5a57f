package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/kcgdeck/internal/deckcode"
)

var validateAsSimple bool

// validateCmd runs the pre-decode gate and reports the first failing rule.
var validateCmd = &cobra.Command{
	Use:   "validate <code>",
	Short: "Check a pasted deck code without decoding it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var verr *deckcode.ValidationError
		if validateAsSimple {
			verr = deckcode.ValidateSimpleCode(args[0])
		} else {
			verr = deckcode.ValidateCode(args[0])
		}
		if verr != nil {
			fmt.Fprintln(os.Stderr, "Invalid:", verr)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateAsSimple, "simple", false, "also check simple-form tokens")
}
