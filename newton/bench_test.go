package newton_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
	"github.com/katalvlaran/spacetime/newton"
)

// BenchmarkSearch_LightCone measures a quadratic criterion from a fair guess.
func BenchmarkSearch_LightCone(b *testing.B) {
	v, _ := core.NewVelocity(0.5, 0, 0)
	h := history.NewUniformVelocity(history.BaseAt(core.NewEvent(0, 3, 0, 0), 0), v)
	f, _ := newton.New(h, newton.OnLightCone(core.Origin()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Search(10)
	}
}
