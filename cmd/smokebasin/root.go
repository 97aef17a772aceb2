package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/smokebasin/heightmap"
	"github.com/katalvlaran/smokebasin/internal/config"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	topK       int
	sentinel   int
	strict     bool
	klogFlags  *flag.FlagSet
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	rf := &rootFlags{klogFlags: flag.NewFlagSet("klog", flag.ContinueOnError)}
	klog.InitFlags(rf.klogFlags)

	root := &cobra.Command{
		Use:           "smokebasin",
		Short:         "Analyze low points and basins of a digit heightmap",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "path to a smokebasin.yaml configuration file")
	pf.IntVar(&rf.topK, "top-k", 0, "number of largest basins to multiply (overrides config)")
	pf.IntVar(&rf.sentinel, "sentinel", 0, "ridge height bounding basins (overrides config)")
	pf.BoolVar(&rf.strict, "strict", false, "fail when two low points share one basin (overrides config)")
	pf.AddGoFlagSet(rf.klogFlags)

	root.AddCommand(newAnalyzeCmd(rf), newCheckCmd(rf))
	return root
}

// load resolves the configuration: file first, then explicit flags.
func (rf *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		var err error
		if cfg, err = config.Load(rf.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("top-k") {
		k := rf.topK
		cfg.Analysis.TopK = &k
	}
	if flags.Changed("sentinel") {
		s := rf.sentinel
		cfg.Analysis.Sentinel = &s
	}
	if flags.Changed("strict") {
		cfg.Analysis.Strict = rf.strict
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if !flags.Changed("v") && cfg.Logging.Verbosity > 0 {
		if err := rf.klogFlags.Set("v", strconv.Itoa(cfg.Logging.Verbosity)); err != nil {
			return nil, errors.Wrap(err, "failed to set klog verbosity")
		}
	}
	return cfg, nil
}

// readGrid reads the heightmap from args[0], or from stdin when no file or
// "-" is given.
func readGrid(cmd *cobra.Command, args []string) (*heightmap.Grid, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open %q for reading", name)
		}
		defer f.Close()
		r = f
	}

	g, err := heightmap.Read(r)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read heightmap from %s", name)
	}
	klog.V(1).Infof("read %s: width=%d height=%d", name, g.Width, g.Height)
	return g, nil
}
