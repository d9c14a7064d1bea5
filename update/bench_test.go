package update_test

import (
	"testing"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/lattice"
	"github.com/katalvlaran/yangmills/update"
)

// BenchmarkSweep_SU3 measures one Metropolis sweep on a 4⁴ lattice.
// Complexity: O(4·V·hits)
func BenchmarkSweep_SU3(b *testing.B) {
	l, err := lattice.New[group.SU3](lattice.Dims{NX: 4, NY: 4, NZ: 4, NT: 4}, false, lattice.WithSeed(1))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	m, err := update.NewMetropolis(l, 5.7)
	if err != nil {
		b.Fatalf("setup NewMetropolis failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Sweep(); err != nil {
			b.Fatal(err)
		}
	}
}
