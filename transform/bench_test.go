package transform_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

// benchmarkTransform applies t to a fixed event b.N times.
func benchmarkTransform(b *testing.B, t transform.Transform) {
	e := core.NewEvent(10, 1, 2, 1)
	var sink core.Event

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = t.Apply(e)
	}
	_ = sink
}

// BenchmarkBoost_Oblique measures a boost in a general direction.
func BenchmarkBoost_Oblique(b *testing.B) {
	v, _ := core.NewVelocity(0.5, 0.1, 0.3)
	benchmarkTransform(b, transform.NewBoost(v))
}

// BenchmarkRotation_Aligned measures the coordinate-axis shortcut.
func BenchmarkRotation_Aligned(b *testing.B) {
	r, _ := transform.NewRotation(core.Z, 0.7)
	benchmarkTransform(b, r)
}

// BenchmarkRotation_Rodrigues measures the general-axis path.
func BenchmarkRotation_Rodrigues(b *testing.B) {
	benchmarkTransform(b, mustRotationOf(b, 0.1, 0.4, 0.5))
}

// BenchmarkPipeline_FourStages measures a full boost+rotation+reflection+displacement chain.
func BenchmarkPipeline_FourStages(b *testing.B) {
	v, _ := core.NewVelocity(0.5, 0.1, 0.3)
	p := transform.NewPipeline(
		transform.NewBoost(v),
		mustRotationOf(b, 0.1, 0.4, 0.5),
		transform.AllAxes(),
		transform.NewDisplacement(1, -2, -3, 4),
	)
	benchmarkTransform(b, p)
}
