package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type run struct {
	entities    int
	iterations  int
	probability int
}

// defaultRuns is the table printed when no single run is requested
var defaultRuns = []run{
	{1_000, 100_000, 3},
	{10_000, 100_000, 3},
	{30_000, 10_000, 3},
	{100_000, 10_000, 5},
	{10_000, 100_000, 1_000},
	{100_000, 100_000, 1_000},
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var single run
	var profileMode, profilePath, logLevel string

	cmd := &cobra.Command{
		Use:   "depotbench",
		Short: "Benchmark depot Identity+Tag queries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("profile") {
				profileMode = cfg.Profile
			}
			if !cmd.Flags().Changed("profile-path") {
				profilePath = cfg.ProfilePath
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.LogLevel
			}

			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return eris.Wrapf(err, "invalid log level %q", logLevel)
			}
			logger = logger.Level(level)

			stop, err := startProfile(profileMode, profilePath)
			if err != nil {
				return err
			}
			defer stop()

			runs := defaultRuns
			if single.entities > 0 {
				runs = []run{single}
			}
			return runAll(cmd.OutOrStdout(), logger, runs)
		},
	}

	cmd.Flags().IntVar(&single.entities, "entities", 0, "entity count for a single run (0 runs the default table)")
	cmd.Flags().IntVar(&single.iterations, "iterations", 10_000, "queries per run")
	cmd.Flags().IntVar(&single.probability, "probability", 3, "one in N entities carries the tag")
	cmd.Flags().StringVar(&profileMode, "profile", "", "profile to record: cpu or mem")
	cmd.Flags().StringVar(&profilePath, "profile-path", ".", "directory profiles are written to")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func startProfile(mode, path string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	default:
		return nil, eris.Errorf("unknown profile mode %q", mode)
	}
	p := profile.Start(opt, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook)
	return p.Stop, nil
}

func runAll(out io.Writer, logger zerolog.Logger, runs []run) error {
	printHeader(out)
	for _, r := range runs {
		if r.probability <= 0 || r.iterations <= 0 {
			return eris.Errorf("invalid run %+v", r)
		}
		res, err := benchmark(r.entities, r.iterations, r.probability)
		if err != nil {
			return err
		}
		logger.Debug().
			Int("entities", r.entities).
			Int("matched", res.matched).
			Dur("populate", res.populate).
			Dur("query", res.query).
			Msg("run finished")
		printResult(out, "Identity + Tag", r, res.query)
	}
	printFooter(out)
	return nil
}

const rule = "|----------------------------------------------------------------------------------|"

func printHeader(out io.Writer) {
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "|%-16s|%12s|%12s|%12s|%26s|\n", "Name", "Entities", "Iterations", "Probability", "Duration(ms)")
	fmt.Fprintln(out, rule)
}

func printResult(out io.Writer, name string, r run, d time.Duration) {
	fmt.Fprintf(out, "|%-16s|%12d|%12d|%12s|%26d|\n",
		name, r.entities, r.iterations, fmt.Sprintf("1/%d", r.probability), d.Milliseconds())
}

func printFooter(out io.Writer) {
	fmt.Fprintln(out, rule)
}
