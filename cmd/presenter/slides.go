package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/app"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/config"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/i18n"
)

func newSlidesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slides",
		Short: "List the deck in presentation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := optionsFrom(cmd)
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			reg, err := app.LoadDeck(cfg, opts.DeckPath)
			if err != nil {
				return err
			}
			catalog, err := i18n.NewCatalog()
			if err != nil {
				return fmt.Errorf("load translations: %w", err)
			}
			lang := i18n.ParseLanguage(opts.Language)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tSECTION\tTITLE")
			for _, s := range reg.Slides() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					catalog.Number(lang, s.Index+1), s.ID, s.Section, catalog.T(lang, s.TitleKey))
			}
			return w.Flush()
		},
	}
}
