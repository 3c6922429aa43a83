// File: report.go
// Role: the "report" subcommand — recomputes report.json from a stored
// mixture.json without re-running MWU.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/irespan/ire/internal/clilog"
	"github.com/irespan/ire/ioedge"
	"github.com/irespan/ire/report"
)

func newReportCommand() *cobra.Command {
	var (
		graphPath   string
		mixturePath string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Recompute report.json from a stored mixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := clilog.New(cmd.OutOrStdout())

			g, err := ioedge.Load(graphPath)
			if err != nil {
				return err
			}

			var mixture report.MixturePayload
			if err := readJSON(mixturePath, &mixture); err != nil {
				return err
			}

			rpt, err := report.Recompute(g, mixture)
			if err != nil {
				return err
			}

			reportPath := filepath.Join(outDir, "report.json")
			if err := writeJSON(reportPath, rpt); err != nil {
				return err
			}
			logger.Wrote(reportPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "path to the edge-list graph")
	cmd.Flags().StringVar(&mixturePath, "mixture", "", "path to a stored mixture.json")
	cmd.Flags().StringVar(&outDir, "out", "outputs", "output directory")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("mixture")

	return cmd
}
