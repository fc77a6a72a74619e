// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario wraps every validation problem.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// problems collects validation failures keyed by field path.
type problems []error

func (p *problems) add(path string, err error) {
	*p = append(*p, fmt.Errorf("%s: %w", path, err))
}

func (p *problems) addf(path, format string, args ...any) {
	*p = append(*p, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(p...))
}
