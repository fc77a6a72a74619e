package history_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
)

// BenchmarkStitched_Event measures leg lookup on a ten-leg history.
func BenchmarkStitched_Event(b *testing.B) {
	bl := history.Start(history.NewStationary(history.Origin()))
	for i := 1; i < 10; i++ {
		_ = bl.AddLeg(history.NewStationary(history.Origin()), float64(i))
	}
	h, _ := bl.Build()
	var sink core.Event

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = h.Event(7.5)
	}
	_ = sink
}

// BenchmarkMoveable_NumericVelocity measures the finite-difference path.
func BenchmarkMoveable_NumericVelocity(b *testing.B) {
	c, _ := history.NewCircularMotion(history.Origin(), 1, 0.5, core.Z, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Moveable.Velocity(float64(i))
	}
}
