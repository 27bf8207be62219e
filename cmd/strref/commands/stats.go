package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/strref/internal/adapters/config"
	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "stats [flags] FILE...",
		Short: "Report line statistics for files, directories or glob patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML {
				return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "unsupported --format value"), "format", format)
			}

			report, err := c.app.Stats(cmd.Context(), configPath, args)
			if err != nil {
				return err
			}
			defer report.Release()

			if format == formatYAML {
				return renderYAML(cmd.OutOrStdout(), report)
			}
			return renderText(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultFilename, "Path to the configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text or yaml)")

	return cmd
}
