// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/internal/config"
	"github.com/katalvlaran/yangmills/internal/rng"
	"github.com/katalvlaran/yangmills/lattice"
	"github.com/katalvlaran/yangmills/measure"
	"github.com/katalvlaran/yangmills/update"
)

// updaterStream is the substream of the configured seed that drives the
// Metropolis chain. Hot-start blocks use the low stream numbers.
const updaterStream = ^uint64(0)

const (
	phaseThermalize = "thermalize"
	phaseMeasure    = "measure"

	obsPlaquette = "plaquette"
	obsAction    = "action"
)

func (a *app) runCmd() *cobra.Command {
	var metricsFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Thermalize and measure with Metropolis sweeps",
		Long: `Builds the lattice, performs update.thermalization sweeps, then update.sweeps
measured sweeps. The average plaquette and the Wilson action are recorded
every measure.sample_rate sweeps after measure.start, and their mean, error
and integrated autocorrelation time are printed.

Interrupting the command stops after the current sweep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			v, err := a.cfg.Variant()
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			log := a.log.With(zap.String("run_id", runID))
			metrics := newRunMetrics(runID, v.String())

			log.Info("run started",
				zap.Stringer("group", v),
				zap.Stringer("dims", a.cfg.Dims()),
				zap.Float64("beta", a.cfg.Update.Beta),
				zap.Int64("seed", a.cfg.Lattice.Seed),
			)
			start := time.Now()

			r := runner{cfg: a.cfg, log: log, metrics: metrics, out: cmd.OutOrStdout()}
			switch v {
			case group.VariantSU2:
				err = simulate[group.SU2](ctx, r)
			case group.VariantSU3:
				err = simulate[group.SU3](ctx, r)
			default:
				err = fmt.Errorf("run: %w", group.ErrUnknownVariant)
			}

			if metricsFile != "" {
				if werr := metrics.write(metricsFile); werr != nil {
					log.Error("metrics not written", zap.String("path", metricsFile), zap.Error(werr))
					err = errors.Join(err, werr)
				}
			}
			if err != nil {
				log.Error("run failed", zap.Error(err))
				return err
			}
			log.Info("run finished", zap.Duration("elapsed", time.Since(start)))

			return nil
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file")

	return cmd
}

// runner bundles what simulate needs besides the group type.
type runner struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *runMetrics
	out     io.Writer
}

// simulate runs the thermalization and measurement phases for group T.
func simulate[T group.Element[T]](ctx context.Context, r runner) error {
	cfg := r.cfg
	l, err := lattice.New[T](cfg.Dims(), cfg.Cold(), latticeOptions(cfg)...)
	if err != nil {
		return err
	}
	m, err := update.NewMetropolis(l, cfg.Update.Beta,
		update.WithSeed(rng.DeriveSeed(rng.Resolve(cfg.Lattice.Seed), updaterStream)),
		update.WithHits(cfg.Update.Hits),
		update.WithEpsilon(cfg.Update.Epsilon),
		update.WithReunitarizeEvery(cfg.Update.ReunitarizeEvery),
		update.WithLogger(r.log),
	)
	if err != nil {
		return err
	}

	var accepted, proposed int
	err = m.Run(ctx, cfg.Update.Thermalization, func(st update.Stats) error {
		accepted += st.Accepted
		proposed += st.Proposed
		r.metrics.observe(phaseThermalize, st, l.AveragePlaquette())
		return nil
	})
	if err != nil {
		return fmt.Errorf("thermalization: %w", err)
	}
	if proposed > 0 {
		r.log.Info("thermalized",
			zap.Int("sweeps", cfg.Update.Thermalization),
			zap.Float64("acceptance", float64(accepted)/float64(proposed)),
			zap.Float64("plaquette", l.AveragePlaquette()),
		)
	}

	rec := measure.NewRecorder[*lattice.Lattice[T]](
		measure.WithStart(cfg.Measure.Start),
		measure.WithSampleRate(cfg.Measure.SampleRate),
	)
	if err = rec.Track(obsPlaquette, (*lattice.Lattice[T]).AveragePlaquette); err != nil {
		return err
	}
	beta := cfg.Update.Beta
	if err = rec.Track(obsAction, func(l *lattice.Lattice[T]) float64 { return l.WilsonAction(beta) }); err != nil {
		return err
	}

	accepted, proposed = 0, 0
	err = m.Run(ctx, cfg.Update.Sweeps, func(st update.Stats) error {
		accepted += st.Accepted
		proposed += st.Proposed
		rec.Observe(l)
		r.metrics.observe(phaseMeasure, st, l.AveragePlaquette())
		return nil
	})
	if err != nil {
		return fmt.Errorf("measurement: %w", err)
	}
	if err = l.Validate(group.DefaultTolerance); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "lattice:    %s %s, beta=%g, %s start\n", l.Variant(), l.Dims(), beta, startName(cfg))
	fmt.Fprintf(r.out, "sweeps:     %d thermalization + %d measured, acceptance %.4f\n",
		cfg.Update.Thermalization, cfg.Update.Sweeps, float64(accepted)/float64(proposed))

	return report(r, rec)
}

// report prints summary statistics of every tracked observable.
func report[S any](r runner, rec *measure.Recorder[S]) error {
	for _, name := range rec.Names() {
		sum, err := rec.Summary(name)
		if err != nil {
			if errors.Is(err, measure.ErrEmptySeries) {
				r.log.Warn("too few samples", zap.String("observable", name), zap.Int("samples", rec.Samples()))
				fmt.Fprintf(r.out, "%s: not enough samples\n", name)
				continue
			}
			return err
		}
		fmt.Fprintln(r.out, sum)

		s, err := rec.Series(name)
		if err != nil {
			return err
		}
		tau, err := s.IntegratedTime(r.cfg.Measure.MaxLag)
		switch {
		case err == nil:
			fmt.Fprintf(r.out, "  tau_int = %.3f (window %d)\n", tau, r.cfg.Measure.MaxLag)
		case errors.Is(err, measure.ErrZeroVariance):
			fmt.Fprintln(r.out, "  tau_int = n/a (constant series)")
		default:
			return err
		}
	}

	return nil
}
