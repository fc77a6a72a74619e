package newton_test

import (
	"fmt"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
	"github.com/katalvlaran/spacetime/newton"
)

// ExampleFinder_Search finds where a moving object crosses the future light
// cone of the origin: x = 3 + 0.5·ct reaches the flash at ct = 6.
func ExampleFinder_Search() {
	v, _ := core.NewVelocity(0.5, 0, 0)
	h := history.NewUniformVelocity(history.BaseAt(core.NewEvent(0, 3, 0, 0), 0), v)

	f, _ := newton.New(h, newton.OnLightCone(core.Origin()), newton.WithEpsilon(1e-9))
	res, _ := f.Search(10)

	fmt.Printf("ct=%.6f converged=%v\n", res.Lambda, res.Converged)
	fmt.Printf("event=(%.3f, %.3f)\n", res.Event(h).CT(), res.Event(h).X())

	// Output:
	// ct=6.000000 converged=true
	// event=(6.000, 6.000)
}
