// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/internal/config"
	"github.com/katalvlaran/yangmills/lattice"
)

func (a *app) observeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "observe",
		Short: "Build a lattice and print its action and average plaquette",
		Long: `Builds a cold or hot lattice from the configuration, checks that every link
is a group element, and prints the Wilson action at the configured beta and
the average plaquette. No updates are performed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.cfg.Variant()
			if err != nil {
				return err
			}
			g, err := lattice.NewGauge(a.cfg.Dims(), a.cfg.Cold(), v, latticeOptions(a.cfg)...)
			if err != nil {
				return err
			}
			if err = g.Validate(group.DefaultTolerance); err != nil {
				return err
			}

			beta := a.cfg.Update.Beta
			action, plaq := g.WilsonAction(beta), g.AveragePlaquette()
			a.log.Info("lattice observed",
				zap.Stringer("group", v),
				zap.Stringer("dims", g.Dims()),
				zap.String("start", startName(a.cfg)),
				zap.Int64("seed", a.cfg.Lattice.Seed),
				zap.Float64("action", action),
				zap.Float64("plaquette", plaq),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lattice:           %s %s (%d sites, %s start)\n", v, g.Dims(), g.Volume(), startName(a.cfg))
			fmt.Fprintf(out, "wilson action:     %.10g (beta=%g)\n", action, beta)
			fmt.Fprintf(out, "average plaquette: %.10g\n", plaq)

			return nil
		},
	}
}

// latticeOptions maps the lattice section onto construction options.
func latticeOptions(cfg *config.Config) []lattice.Option {
	workers := cfg.Lattice.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return []lattice.Option{
		lattice.WithSeed(cfg.Lattice.Seed),
		lattice.WithWorkers(workers),
	}
}

func startName(cfg *config.Config) string {
	if cfg.Cold() {
		return config.StartCold
	}

	return config.StartHot
}
