package transform_test

import (
	"fmt"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

// ExampleBoost shows a boost along X and its reverse.
func ExampleBoost() {
	b, _ := transform.BoostAlong(core.X, 0.6)
	e := core.NewEvent(10, 2, 0, 0)

	moved := b.Apply(e)
	fmt.Printf("apply:   (%.4f, %.4f)\n", moved.CT(), moved.X())

	back := b.Reverse(moved)
	fmt.Printf("reverse: (%.4f, %.4f)\n", back.CT(), back.X())

	// Output:
	// apply:   (11.0000, -5.0000)
	// reverse: (10.0000, 2.0000)
}

// ExamplePipeline shows that a pipeline undoes itself in reverse order and
// that the interval between two events survives the linear stages.
func ExamplePipeline() {
	v, _ := core.NewVelocity(0.5, 0.1, 0.3)
	r, _ := transform.RotationOf(core.NewAxisAngle(0.1, 0.4, 0.5))
	p := transform.NewPipeline(
		transform.NewBoost(v),
		r,
		transform.AllAxes(),
		transform.NewDisplacement(1, -2, -3, 4),
	)
	a := core.NewEvent(10, 1, 2, 1)
	b := core.NewEvent(15, 3, 2, 5)

	fmt.Printf("stages: %d\n", p.Len())
	fmt.Printf("interval² before: %.6f\n", a.IntervalSquared(b))
	fmt.Printf("interval² after:  %.6f\n", p.Apply(a).IntervalSquared(p.Apply(b)))
	fmt.Println("round trip:", p.Reverse(p.Apply(a)).EqualsWithTolerance(a, 1e-9))

	// Output:
	// stages: 4
	// interval² before: 5.000000
	// interval² after:  5.000000
	// round trip: true
}
