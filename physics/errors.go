// SPDX-License-Identifier: MIT

package physics

import "errors"

// ErrBadParameter is returned for inputs outside a formula's domain other
// than speeds, e.g. Γ < 1 or a non-positive temperature.
var ErrBadParameter = errors.New("physics: parameter out of range")
