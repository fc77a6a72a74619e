package scenario_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spacetime/scenario"
)

// BenchmarkRun_BoostX measures a full run of the golden scenario.
func BenchmarkRun_BoostX(b *testing.B) {
	s, err := scenario.LoadFile(filepath.Join("testdata", "boost-x.yaml"))
	if err != nil {
		b.Fatal(err)
	}
	r := scenario.NewRunner()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(s); err != nil {
			b.Fatal(err)
		}
	}
}
