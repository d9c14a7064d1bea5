// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series is the ordered sample of one observable.
type Series struct {
	name   string
	values []float64
}

// NewSeries returns a series holding a copy of values.
func NewSeries(name string, values ...float64) *Series {
	return &Series{name: name, values: slices.Clone(values)}
}

// Name returns the observable name.
func (s *Series) Name() string { return s.name }

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Append adds one sample.
func (s *Series) Append(v float64) { s.values = append(s.values, v) }

// Values returns a copy of the samples.
func (s *Series) Values() []float64 { return slices.Clone(s.values) }

// Mean returns the sample mean. Requires at least one sample.
func (s *Series) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, measureErrorf("Mean", fmt.Errorf("%q: %w", s.name, ErrEmptySeries))
	}

	return stat.Mean(s.values, nil), nil
}

// StdDev returns the unbiased (n−1) standard deviation. Requires two samples.
func (s *Series) StdDev() (float64, error) {
	if len(s.values) < 2 {
		return 0, measureErrorf("StdDev", fmt.Errorf("%q has %d samples: %w", s.name, len(s.values), ErrEmptySeries))
	}

	return stat.StdDev(s.values, nil), nil
}

// StdErr returns StdDev/√n, the naive error of the mean that ignores
// autocorrelation; multiply by √(2·τ_int) for correlated chains.
func (s *Series) StdErr() (float64, error) {
	sd, err := s.StdDev()
	if err != nil {
		return 0, measureErrorf("StdErr", err)
	}

	return sd / math.Sqrt(float64(len(s.values))), nil
}

// centered returns x_i − x̄ and Γ(0).
func (s *Series) centered(op string) ([]float64, float64, error) {
	n := len(s.values)
	if n == 0 {
		return nil, 0, measureErrorf(op, fmt.Errorf("%q: %w", s.name, ErrEmptySeries))
	}
	d := slices.Clone(s.values)
	floats.AddConst(-stat.Mean(d, nil), d)
	g0 := floats.Dot(d, d) / float64(n)
	if g0 == 0 {
		return nil, 0, measureErrorf(op, fmt.Errorf("%q: %w", s.name, ErrZeroVariance))
	}

	return d, g0, nil
}

// rho returns Γ(k)/Γ(0) for centered data d. No bounds checks.
func rho(d []float64, g0 float64, k int) float64 {
	n := len(d)
	return floats.Dot(d[:n-k], d[k:]) / float64(n-k) / g0
}

// Autocorrelation returns ρ(lag) = Γ(lag)/Γ(0); ρ(0) == 1.
// Returns ErrLagTooLarge for lag ∉ [0, n) and ErrZeroVariance for a constant
// series.
// Complexity: O(n).
func (s *Series) Autocorrelation(lag int) (float64, error) {
	if lag < 0 || lag >= len(s.values) {
		return 0, measureErrorf("Autocorrelation", fmt.Errorf("%q: lag %d of %d samples: %w", s.name, lag, len(s.values), ErrLagTooLarge))
	}
	d, g0, err := s.centered("Autocorrelation")
	if err != nil {
		return 0, err
	}

	return rho(d, g0, lag), nil
}

// Autocorrelations returns ρ(0), ρ(1), …, ρ(maxLag). Lags not smaller than the
// series length are dropped, so the result may be shorter than maxLag+1.
// Complexity: O(n·maxLag).
func (s *Series) Autocorrelations(maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, measureErrorf("Autocorrelations", fmt.Errorf("%q: lag %d: %w", s.name, maxLag, ErrLagTooLarge))
	}
	d, g0, err := s.centered("Autocorrelations")
	if err != nil {
		return nil, err
	}
	maxLag = min(maxLag, len(d)-1)

	out := make([]float64, maxLag+1)
	for k := range out {
		out[k] = rho(d, g0, k)
	}

	return out, nil
}

// IntegratedTime returns τ_int = 1/2 + Σ_{k=1..window} ρ(k), with the window
// clipped to the series length. τ_int = 1/2 for uncorrelated samples.
func (s *Series) IntegratedTime(window int) (float64, error) {
	ac, err := s.Autocorrelations(window)
	if err != nil {
		return 0, measureErrorf("IntegratedTime", err)
	}
	tau := 0.5
	for _, r := range ac[1:] {
		tau += r
	}

	return tau, nil
}

// ExponentialTime fits log ρ(k) = a − k/τ by least squares over the lags
// 1..maxLag with ρ(k) > 0 and returns τ.
// Returns ErrNoDecay with fewer than two usable lags or a non-negative slope.
func (s *Series) ExponentialTime(maxLag int) (float64, error) {
	ac, err := s.Autocorrelations(maxLag)
	if err != nil {
		return 0, measureErrorf("ExponentialTime", err)
	}
	var xs, ys []float64
	for k := 1; k < len(ac); k++ {
		if ac[k] > 0 {
			xs = append(xs, float64(k))
			ys = append(ys, math.Log(ac[k]))
		}
	}
	if len(xs) < 2 {
		return 0, measureErrorf("ExponentialTime", fmt.Errorf("%q: %d positive lags: %w", s.name, len(xs), ErrNoDecay))
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if !(slope < 0) {
		return 0, measureErrorf("ExponentialTime", fmt.Errorf("%q: slope %g: %w", s.name, slope, ErrNoDecay))
	}

	return -1 / slope, nil
}

// Summary is a snapshot of the basic statistics of a series.
type Summary struct {
	Name   string
	N      int
	Mean   float64
	StdDev float64
	StdErr float64
}

// String renders "name = mean ± stderr (n=N)".
func (s Summary) String() string {
	return fmt.Sprintf("%s = %.6f ± %.6f (n=%d)", s.Name, s.Mean, s.StdErr, s.N)
}

// Summarize computes a Summary. Requires two samples.
func (s *Series) Summarize() (Summary, error) {
	sd, err := s.StdDev()
	if err != nil {
		return Summary{}, measureErrorf("Summarize", err)
	}
	n := len(s.values)

	return Summary{
		Name:   s.name,
		N:      n,
		Mean:   stat.Mean(s.values, nil),
		StdDev: sd,
		StdErr: sd / math.Sqrt(float64(n)),
	}, nil
}
