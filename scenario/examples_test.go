// SPDX-License-Identifier: MIT
package scenario_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/scenario"
)

// TestExamples runs every scenario shipped in examples/.
func TestExamples(t *testing.T) {
	paths, err := filepath.Glob("../examples/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := scenario.LoadFile(path)
			require.NoError(t, err)
			rep, err := scenario.NewRunner().Run(s)
			require.NoError(t, err)

			for _, e := range rep.Events {
				require.True(t, e.RoundTrip, "event %s", e.Name)
			}
			for _, iv := range rep.Intervals {
				require.True(t, iv.Invariant, "interval %s-%s", iv.From, iv.To)
			}
			for _, sr := range rep.Searches {
				require.Empty(t, sr.Error, "%s %s", sr.History, sr.Criterion)
				require.True(t, sr.Converged, "%s %s", sr.History, sr.Criterion)
			}
		})
	}
}
