package scenario_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/spacetime/scenario"
)

// ExampleRunner_Run boosts one event into the rest frame of its position:
// (5, 3, 0, 0) seen from a frame moving at 0.6c along x happens at x' = 0.
func ExampleRunner_Run() {
	s, err := scenario.Load(strings.NewReader(`
name: example
events:
  a: [5, 3, 0, 0]
pipeline:
  - boost: {velocity: [0.6, 0, 0]}
`))
	if err != nil {
		panic(err)
	}
	rep, err := scenario.NewRunner().Run(s)
	if err != nil {
		panic(err)
	}
	_ = rep.WriteText(os.Stdout)

	// Output:
	// scenario  example
	// epsilon   1e-09
	// pipeline  boost(0.6, 0, 0)
	//
	// EVENT  BEFORE        AFTER         SQUARE  SQUARE'  ROUND-TRIP
	// a      (5, 3, 0, 0)  (4, 0, 0, 0)  16      16       ok
}
