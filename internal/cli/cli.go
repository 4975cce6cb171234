// Package cli implements the teachkit command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teachkit/teachkit/internal/config"
	"github.com/teachkit/teachkit/internal/gemini"
	"github.com/teachkit/teachkit/internal/log"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug int

	root := &cobra.Command{
		Use:           "teachkit",
		Short:         "Classroom document formatting and extraction tools",
		Long:          "teachkit reformats worksheets to match a reference template and\nbundles the extraction tools teachers reach for alongside it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("debug") {
				log.SetLevel(log.LevelFromInt(debug))
			}
		},
	}
	root.PersistentFlags().IntVar(&debug, "debug", 0, "debug level 0-4")

	root.AddCommand(
		newServeCmd(),
		newFormatCmd(),
		newHeadersCmd(),
		newTTSCmd(),
		newYTDLCmd(),
		newVersionCmd(),
	)
	return root
}

// loadSettings resolves configuration and applies its debug level unless
// the --debug flag already did.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("debug") && settings.DebugLevel > 0 {
		log.SetLevel(log.LevelFromInt(settings.DebugLevel))
	}
	return settings, nil
}

// newOracle builds the Gemini client; all oracle-backed commands share
// the same key requirement.
func newOracle(ctx context.Context, settings *config.Settings) (*gemini.Client, error) {
	if settings.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set; export it or add apiKey to the config file")
	}
	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:   settings.APIKey,
		Model:    settings.Model,
		TTSModel: settings.TTSModel,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the teachkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
