// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/spacetime/scenario"
)

// loadScenario reads the scenario at path and applies the --epsilon
// override. Failures are reported through f and returned as ExitErrors.
func loadScenario(opts *RootOptions, path string, f *OutputFormatter) (*scenario.Scenario, error) {
	f.VerboseLog("loading scenario %s", path)
	s, err := scenario.LoadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		_ = f.Error(ErrCodeNotFound, "scenario file not found: "+path, nil)
		return nil, WrapExitError(ExitCommandError, "scenario not found", err)
	case err != nil:
		_ = f.Error(ErrCodeInvalidScenario, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "invalid scenario", err)
	}
	if opts.Epsilon > 0 {
		f.VerboseLog("epsilon %g overrides %g", opts.Epsilon, s.Epsilon)
		s.Epsilon = opts.Epsilon
	}
	return s, nil
}
