package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/config"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/logging"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the presenter log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			lines, _ := cmd.Flags().GetInt("lines")
			plain, _ := cmd.Flags().GetBool("plain")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out, err := logging.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			for _, line := range out {
				if !plain {
					line = logging.Highlight(line)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntP("lines", "n", 50, "number of lines to show")
	cmd.Flags().Bool("plain", false, "disable level colors")
	return cmd
}
