package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/modelsite/internal/config"
	"github.com/dgallion1/modelsite/internal/site"
	"github.com/spf13/cobra"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "modelsite",
		Short: "Generate a static browsing site for the NetLogo model library",
		Long: `modelsite walks the model library next to the binary, renders one HTML
page per model from its embedded info tab, and writes an index page with a
collapsible folder tree. Every run regenerates the whole site.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return site.NewBuilder(cfg, log).Run()
		},
	}

	if err := root.Execute(); err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}
}
