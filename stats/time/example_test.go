package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-toolbox/stats/time"
)

func ExampleZScore() {
	z, _ := timestats.ZScore([]float64{1, 2, 3})
	fmt.Printf("%.3f %.3f %.3f\n", z[0], z[1], z[2])

	// Output:
	// -1.225 0.000 1.225
}

func ExampleFindNearest() {
	idx := timestats.FindNearest([]float64{6, 7, 7, 12, 13}, 1)
	fmt.Println(idx)

	// Output:
	// 0
}
