package update_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/lattice"
	"github.com/katalvlaran/yangmills/update"
)

// ExampleMetropolis_Run thermalizes a small SU(2) lattice at large β.
func ExampleMetropolis_Run() {
	l, err := lattice.New[group.SU2](lattice.Dims{NX: 4, NY: 4, NZ: 4, NT: 4}, false, lattice.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := update.NewMetropolis(l, 8, update.WithSeed(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	before := l.AveragePlaquette()
	if err = m.Run(context.Background(), 10, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sweeps:", m.Sweeps())
	fmt.Println("ordered:", l.AveragePlaquette() > before)
	fmt.Println("valid:", l.Validate(group.DefaultTolerance) == nil)
	// Output:
	// sweeps: 10
	// ordered: true
	// valid: true
}
