// Package yangmills computes observables of pure SU(2) and SU(3) Yang–Mills
// theory on a periodic four-dimensional lattice.
//
// 🚀 What is yangmills?
//
//	A small, deterministic lattice gauge theory toolkit:
//		• Gauge groups: SU(2) and SU(3) matrices with Haar sampling
//		• Lattice: periodic 4D grid, one link per site and direction
//		• Observables: plaquette, Wilson action, average plaquette
//		• Updates: single-link Metropolis with staples
//		• Statistics: mean, error, autocorrelation, τ_int
//
// Packages:
//
//	group/          — Element[T] contract, SU2, SU3, Variant
//	lattice/        — Lattice[T], neighbor tables, Wilson action, staples
//	update/         — Metropolis[T] sweeps
//	measure/        — Series, Recorder[S], autocorrelation
//	internal/rng    — seeding and SplitMix64 substreams
//	internal/config — YAML run configuration
//	cmd/gaugelat    — command line driver
//
// A plaquette is the ordered product of the four links around one unit square:
//
//	x+ν̂ ←─U_μ(x+ν̂)†── x+μ̂+ν̂
//	 │                   ↑
//	U_ν(x)†          U_ν(x+μ̂)
//	 ↓                   │
//	 x ───U_μ(x)──→ x+μ̂
//
// Its normalized real trace Re Tr P / N is 1 for unit links and averages to 0
// for Haar-random links.
//
//	go get github.com/katalvlaran/yangmills
package yangmills
