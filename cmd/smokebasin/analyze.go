package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smokebasin/analysis"
	"github.com/katalvlaran/smokebasin/topk"
)

func newAnalyzeCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the risk-score sum and the product of the largest basins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.load(cmd)
			if err != nil {
				return err
			}
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}

			rep, err := analysis.Analyze(g, cfg.Options()...)
			if rep != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "risk_sum=%d\n", rep.RiskSum)
			}
			if err != nil {
				if errors.Is(err, topk.ErrInsufficientBasins) {
					return fmt.Errorf("only %d basins found, need %d: %w", len(rep.BasinSizes), *cfg.Analysis.TopK, err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "top_product=%d\n", rep.TopProduct)
			return nil
		},
	}
}
