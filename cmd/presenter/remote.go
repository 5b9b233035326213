package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/config"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/remote"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote <next|prev|goto ID|section ID|pause|mode|state|swipe GESTURE [DIR]>",
		Short: "Drive a running presenter over its API",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRemote,
	}
	cmd.Flags().String("addr", "", "presenter API address (default api_bind from config)")
	return cmd
}

func runRemote(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if strings.TrimSpace(addr) == "" {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		addr = cfg.APIBind
	}

	client, err := remote.NewClient(addr)
	if err != nil {
		return fmt.Errorf("init remote client: %w", err)
	}

	ctx := cmd.Context()
	action, rest := args[0], args[1:]
	need := func(n int) error {
		if len(rest) < n {
			return fmt.Errorf("%s needs %d argument(s)", action, n)
		}
		return nil
	}

	var out any
	switch action {
	case "state":
		out, err = client.State(ctx)
	case "next":
		out, err = client.Next(ctx)
	case "prev":
		out, err = client.Prev(ctx)
	case "goto":
		if err = need(1); err == nil {
			out, err = client.GoToSlide(ctx, rest[0])
		}
	case "section":
		if err = need(1); err == nil {
			out, err = client.GoToSection(ctx, deck.SectionID(rest[0]))
		}
	case "pause":
		out, err = client.TogglePause(ctx)
	case "mode":
		out, err = client.TogglePresentationMode(ctx)
	case "swipe":
		if err = need(1); err == nil {
			dir := ""
			if len(rest) > 1 {
				dir = rest[1]
			}
			out, err = client.Gesture(ctx, rest[0], dir)
		}
	default:
		return fmt.Errorf("unknown remote action %q", action)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
