package cli

import (
	"github.com/spf13/cobra"

	"github.com/teachkit/teachkit/internal/pipeline"
	"github.com/teachkit/teachkit/internal/server"
	"github.com/teachkit/teachkit/internal/video"
	"github.com/teachkit/teachkit/internal/vision"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the teachkit HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				settings.Addr = addr
			}

			oracle, err := newOracle(cmd.Context(), settings)
			if err != nil {
				return err
			}

			srv := server.New(settings, server.Deps{
				Formatter: pipeline.New(oracle),
				Tables:    vision.New(oracle, settings.MaxTableColumns),
				Speech:    oracle,
				Video:     video.NewFetcher(),
			})
			return srv.Run()
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}
