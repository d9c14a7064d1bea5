package measure_test

import (
	"fmt"

	"github.com/katalvlaran/yangmills/measure"
)

// ExampleRecorder records a toy observable after a two-step thermalization.
func ExampleRecorder() {
	r := measure.NewRecorder[int](measure.WithStart(2))
	if err := r.Track("square", func(i int) float64 { return float64(i * i) }); err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 1; i <= 5; i++ {
		r.Observe(i)
	}
	s, _ := r.Series("square")
	fmt.Println(s.Values())

	sum, _ := r.Summary("square")
	fmt.Println(sum)
	// Output:
	// [9 16 25]
	// square = 16.666667 ± 4.630815 (n=3)
}
