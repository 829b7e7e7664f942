// Pinpad is a secure carousel PIN-entry pad for the terminal.
//
// It renders the three-button PIN entry surface used on constrained
// devices: a carousel of DELETE/SHOW/ENTER plus the digits 0-9, masked
// input with a one-shot last-digit echo, and random re-seeding of the
// selector after every digit.
//
// Usage:
//
//	pinpad [flags]
//
// Running without arguments launches the interactive PIN pad.
// See 'pinpad --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pinpad/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinpad",
	Short: "Carousel PIN-entry pad",
	Long: `A terminal rendition of a secure three-button PIN entry surface.

Digits are entered by cycling a carousel and confirming with the middle
button. Entered digits are masked, SHOW reveals them until the next key
press, and holding DELETE clears the whole PIN.`,
	Version: version.Version,
	RunE:    runEntry,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&flagPrompt, "prompt", "", "header prompt (default from config)")
	rootCmd.Flags().StringVar(&flagSubprompt, "subprompt", "", "retry hint; non-empty starts in the WRONG PIN state")
	rootCmd.Flags().BoolVar(&flagEcho, "echo", false, "print the confirmed PIN to stdout instead of a masked summary")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pinpad %s\n", version.Full())
	},
}
