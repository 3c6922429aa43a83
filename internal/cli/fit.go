// File: fit.go
// Role: the "fit" subcommand — runs MWU and writes mixture.json/report.json.
package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/irespan/ire/internal/clilog"
	"github.com/irespan/ire/ioedge"
	"github.com/irespan/ire/mwu"
	"github.com/irespan/ire/report"
)

func newFitCommand() *cobra.Command {
	var (
		graphPath  string
		iters      int
		candidates int
		seed       int64
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Run the MWU driver and write mixture.json and report.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := clilog.New(cmd.OutOrStdout())

			g, err := ioedge.Load(graphPath)
			if err != nil {
				return err
			}

			cfg := mwu.Config{
				Iterations:   iters,
				Candidates:   candidates,
				LearningRate: 0.6,
				Seed:         seed,
			}

			res, err := mwu.New(cfg).Fit(context.Background(), g)
			if err != nil {
				return err
			}
			logger.Graph(g.NumVertices(), g.NumEdges(), res.Alpha)

			mixturePayload := report.BuildMixturePayload(graphPath, cfg, res)
			mixturePath := filepath.Join(outDir, "mixture.json")
			if err := writeJSON(mixturePath, mixturePayload); err != nil {
				return err
			}
			logger.Wrote(mixturePath)

			rpt, err := report.AssembleReport(g, res.Trees, res.EC, report.Parameters{
				Iters:      iters,
				Candidates: candidates,
				Seed:       seed,
				Alpha:      res.Alpha,
			})
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
	cmd.Flags().IntVar(&iters, "iters", 80, "number of MWU iterations")
	cmd.Flags().IntVar(&candidates, "candidates", 8, "candidate roots sampled per iteration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&outDir, "out", "outputs", "output directory")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
