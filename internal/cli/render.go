package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hasib2k/portfolio/internal/publish"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var (
		outputDir string
		stdout    string
		base      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the site to static HTML",
		Long:  "Render every page to a directory, or a single project page to stdout with --stdout <slug>.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Publish.OutputDir = outputDir
			}
			if base != "" {
				cfg.Site.BaseURL = base
			}

			if stdout != "" {
				f, err := publish.Page(stdout, cfg.Site.BaseURL)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(f.Body)
				return err
			}

			files, err := publish.Site(cfg.Site.BaseURL)
			if err != nil {
				return err
			}
			if err := publish.WriteDir(cfg.Publish.OutputDir, files); err != nil {
				return err
			}

			log.Info().
				Str("output_dir", cfg.Publish.OutputDir).
				Int("files", len(files)).
				Msg("Rendered site")
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d files to %s\n", len(files), cfg.Publish.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default ./dist)")
	cmd.Flags().StringVar(&stdout, "stdout", "", "render the project with this slug to stdout")
	cmd.Flags().StringVar(&base, "base-url", "", "public base URL for canonical links")

	return cmd
}
