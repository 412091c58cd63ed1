// Command paintball attaches new lexical items to synsets in a
// lexical-semantic network via activation spreading.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "paintball",
		Short: "Activation-spreading lead-synset extraction",
		Long: `paintball attaches source lemmas to synsets in a pre-existing
lexical-semantic network: it pools initial activation for a lemma's known
targets, spreads it across the network, promotes accumulated activation to
synsets, and extracts one lead synset per connected component of the
synsets that clear threshold.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newEvaluateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("paintball version %s\n", version)
		},
	}
}
