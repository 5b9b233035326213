package main

import (
	"github.com/spf13/cobra"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/app"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "presenter",
		Short: "Bilingual COVID-19 slide presenter for the terminal",
		Long: `presenter shows the SARS-CoV-2 biology talk in English or Farsi.
The terminal UI can be driven from the keyboard, the mouse or the remote
control API at the same time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPresent,
	}

	// Persistent flags (available to all commands)
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default ~/.config/covid-presenter/config.toml)")
	flags.String("prefs", "", "preferences file (default ~/.config/covid-presenter/prefs.toml)")
	flags.String("deck", "", "YAML deck file (overrides deck_file)")
	flags.String("lang", "", "language: en or fa (overrides saved preference)")

	root.AddCommand(
		newPresentCmd(),
		newServeCmd(),
		newSlidesCmd(),
		newRemoteCmd(),
		newLogsCmd(),
	)
	return root
}

func newPresentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "present",
		Short: "Run the terminal presenter (default)",
		Args:  cobra.NoArgs,
		RunE:  runPresent,
	}
}

func runPresent(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), optionsFrom(cmd))
}

func optionsFrom(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	prefsPath, _ := flags.GetString("prefs")
	deckPath, _ := flags.GetString("deck")
	lang, _ := flags.GetString("lang")
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		DeckPath:   deckPath,
		Language:   lang,
	}
}
