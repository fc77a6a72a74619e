package core_test

import (
	"fmt"

	"github.com/katalvlaran/spacetime/core"
)

// ExampleEvent_Minus shows that subtracting two events yields a four-vector
// whose Minkowski square classifies the pair.
func ExampleEvent_Minus() {
	a := core.NewEvent(10, 1, 2, 1)
	b := core.NewEvent(15, 3, 2, 5)

	d := b.Minus(a)
	fmt.Println("b − a:", d)
	fmt.Println("square:", d.Square())
	fmt.Println("separation:", core.SeparationOf(d, core.DefaultEpsilon))

	// Output:
	// b − a: (5, 2, 0, 4)
	// square: 5
	// separation: timelike
}

// ExampleNewVelocity shows the speed-limit check.
func ExampleNewVelocity() {
	v, err := core.NewVelocity(0.6, 0, 0)
	fmt.Println(v, v.Gamma(), err)

	_, err = core.NewVelocity(0, 1, 0)
	fmt.Println(err)

	// Output:
	// (0.6, 0, 0) 1.25 <nil>
	// VelocityOf(0, 1, 0): component 1: core: speed limit exceeded
}
