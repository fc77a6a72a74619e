package physics_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/physics"
)

// ExampleDoppler prints the Doppler factor ahead of, beside and behind a
// source moving at 0.6c.
func ExampleDoppler() {
	for _, theta := range []float64{0, math.Pi / 2, math.Pi} {
		d, _ := physics.Doppler(0.6, theta)
		fmt.Printf("θ=%.3f D=%.3f\n", theta, d)
	}

	// Output:
	// θ=0.000 D=2.000
	// θ=1.571 D=0.800
	// θ=3.142 D=0.500
}

// ExampleFourVelocity shows that a four-velocity always has unit square.
func ExampleFourVelocity() {
	v, _ := core.NewVelocity(0.6, 0, 0)
	u := physics.FourVelocity(v)
	fmt.Printf("u=%v square=%.6f\n", u, u.Square())

	// Output:
	// u=(1.25, 0.75, 0, 0) square=1.000000
}
