package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/pinpad/internal/config"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
	"github.com/muurk/pinpad/internal/tui"
)

var (
	flagPrompt    string
	flagSubprompt string
	flagEcho      bool
)

func runEntry(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()

	prompt := cfg.Entry.Prompt
	if flagPrompt != "" {
		prompt = flagPrompt
	}

	outcome, pin, err := tui.Run(prompt, flagSubprompt)
	if err != nil {
		return err
	}

	switch outcome {
	case pinentry.OutcomeConfirmed:
		if flagEcho {
			fmt.Println(pin)
		} else {
			fmt.Printf("PIN confirmed (%d digits)\n", len(pin))
		}
	case pinentry.OutcomeCancelled:
		fmt.Println("Cancelled")
	}
	return nil
}
