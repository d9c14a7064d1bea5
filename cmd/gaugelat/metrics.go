// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/yangmills/update"
)

// runMetrics collects per-run gauges for a node_exporter textfile.
type runMetrics struct {
	reg        *prometheus.Registry
	plaquette  prometheus.Gauge
	acceptance prometheus.Gauge
	sweeps     *prometheus.CounterVec
}

func newRunMetrics(runID, groupName string) *runMetrics {
	labels := prometheus.Labels{"run_id": runID, "group": groupName}
	m := &runMetrics{
		reg: prometheus.NewRegistry(),
		plaquette: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "yangmills_average_plaquette",
			Help:        "Average plaquette after the last completed sweep",
			ConstLabels: labels,
		}),
		acceptance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "yangmills_acceptance_ratio",
			Help:        "Metropolis acceptance ratio of the last completed sweep",
			ConstLabels: labels,
		}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "yangmills_sweeps_total",
			Help:        "Completed Metropolis sweeps by phase",
			ConstLabels: labels,
		}, []string{"phase"}),
	}
	m.reg.MustRegister(m.plaquette, m.acceptance, m.sweeps)

	return m
}

// observe records one completed sweep of the given phase.
func (m *runMetrics) observe(phase string, st update.Stats, plaquette float64) {
	m.sweeps.WithLabelValues(phase).Inc()
	m.acceptance.Set(st.Acceptance())
	m.plaquette.Set(plaquette)
}

// write stores all metrics in the Prometheus text format.
func (m *runMetrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
