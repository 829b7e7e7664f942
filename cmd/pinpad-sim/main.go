// Pinpad-sim is a headless PIN-entry device simulator.
//
// It hosts the same engine the terminal pad uses behind a WebSocket JSON
// protocol, one session per connection, and advertises itself on mDNS as
// _pinpad-sim._tcp. UI test harnesses drive it with button events and
// assert on the returned screen content.
//
// Usage:
//
//	pinpad-sim [flags]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/pinpad/internal/config"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/simserver"
	"github.com/muurk/pinpad/internal/version"
)

var (
	flagAddr      string
	flagPrompt    string
	flagSubprompt string
	flagNoMDNS    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "pinpad-sim",
	Short:   "Headless PIN-entry simulator server",
	Version: version.Version,
	RunE:    runServe,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")
	rootCmd.Flags().StringVar(&flagPrompt, "prompt", "", "session prompt (default from config)")
	rootCmd.Flags().StringVar(&flagSubprompt, "subprompt", "", "retry hint; sessions start in the WRONG PIN state")
	rootCmd.Flags().BoolVar(&flagNoMDNS, "no-mdns", false, "disable mDNS advertisement")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()

	opts := simserver.Options{
		ListenAddr: cfg.Sim.ListenAddr,
		Prompt:     cfg.Entry.Prompt,
		Subprompt:  flagSubprompt,
		Announce:   cfg.Sim.Announce && !flagNoMDNS,
	}
	if flagAddr != "" {
		opts.ListenAddr = flagAddr
	}
	if flagPrompt != "" {
		opts.Prompt = flagPrompt
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("pinpad-sim %s listening on %s\n", version.Version, opts.ListenAddr)
	return simserver.New(opts).Run(ctx)
}
