package main

import (
	"github.com/spf13/cobra"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the remote control API without a terminal UI",
		Long: `Starts the navigation machine headless and exposes it over HTTP and
WebSocket on api_bind. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Serve(cmd.Context(), optionsFrom(cmd), cmd.ErrOrStderr())
		},
	}
}
