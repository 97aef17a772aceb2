package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smokebasin/basin"
	"github.com/katalvlaran/smokebasin/heightmap"
	"github.com/katalvlaran/smokebasin/lowpoint"
)

func newCheckCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Verify that every basin holds exactly one low point",
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

			sentinel := basin.WithSentinel(uint8(*cfg.Analysis.Sentinel))
			regions, err := basin.Partition(g, sentinel)
			if err != nil {
				return err
			}
			var seeds []heightmap.Coord
			for p := range lowpoint.NewDetector(g).All() {
				seeds = append(seeds, p.Coord)
			}
			shared, err := basin.Shared(g, seeds, sentinel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "regions=%d low_points=%d shared=%d\n", len(regions), len(seeds), len(shared))
			for _, s := range shared {
				fmt.Fprintf(out, "shared size=%d seeds=%v\n", s.Size, s.Seeds)
			}
			if len(shared) > 0 {
				return fmt.Errorf("%d basins hold more than one low point", len(shared))
			}
			return nil
		},
	}
}
