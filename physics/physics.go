// SPDX-License-Identifier: MIT

package physics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

// Gamma returns the Lorentz factor 1/√(1−β²).
func Gamma(beta float64) (float64, error) {
	if err := checkBeta("Gamma", beta); err != nil {
		return 0, err
	}
	return 1 / math.Sqrt(1-beta*beta), nil
}

// BetaFromGamma returns the speed for a Lorentz factor Γ ≥ 1.
// Precision is poor for Γ close to 1, where β changes fastest.
func BetaFromGamma(gamma float64) (float64, error) {
	if !(gamma >= 1) || math.IsInf(gamma, 0) {
		return 0, fmt.Errorf("BetaFromGamma(%g): %w", gamma, ErrBadParameter)
	}
	return math.Sqrt(1 - 1/(gamma*gamma)), nil
}

// Rapidity returns atanh β.
func Rapidity(beta float64) (float64, error) {
	if err := checkBeta("Rapidity", beta); err != nil {
		return 0, err
	}
	return math.Atanh(beta), nil
}

// BetaFromRapidity returns tanh w, always inside (−1, 1) for finite w.
func BetaFromRapidity(w float64) float64 { return math.Tanh(w) }

// AddCollinear composes two speeds along the same line.
func AddCollinear(beta1, beta2 float64) (float64, error) {
	if err := checkBeta("AddCollinear", beta1); err != nil {
		return 0, err
	}
	if err := checkBeta("AddCollinear", beta2); err != nil {
		return 0, err
	}
	return (beta1 + beta2) / (1 + beta1*beta2), nil
}

// Doppler returns the Doppler factor D = 1/(Γ(1 − β cos θ)), where θ is the
// angle between the line of sight and the line of motion.
// D > 1 is a blue shift.
func Doppler(beta, theta float64) (float64, error) {
	g, err := Gamma(beta)
	if err != nil {
		return 0, err
	}
	return 1 / (g * (1 - beta*math.Cos(theta))), nil
}

// DopplerTemperature returns D·T0, the apparent temperature of a black body
// with rest temperature T0 kelvin.
func DopplerTemperature(d, t0 float64) (float64, error) {
	if d <= 0 || t0 <= 0 {
		return 0, fmt.Errorf("DopplerTemperature(%g, %g): %w", d, t0, ErrBadParameter)
	}
	return d * t0, nil
}

// MagnitudeShift returns the change in apparent visual magnitude of a black
// body of rest temperature T0 kelvin seen with Doppler factor D
// (McKinley & Doherty, Am. J. Phys. 47, 309 (1979)).
func MagnitudeShift(d, t0 float64) (float64, error) {
	if d <= 0 || t0 <= 0 {
		return 0, fmt.Errorf("MagnitudeShift(%g, %g): %w", d, t0, ErrBadParameter)
	}
	return 2.5*math.Log10(d) - 26000*(1/t0-1/(d*t0)), nil
}

// AberrationDetector returns the angle in [0, π] between the direction a
// detector points and the boost direction, seen after the boost. The
// detector direction is pulled toward the boost direction.
func AberrationDetector(beta, theta float64) (float64, error) {
	if err := checkBeta("AberrationDetector", beta); err != nil {
		return 0, err
	}
	cos := math.Cos(theta)
	return acos((cos + beta) / (1 + beta*cos)), nil
}

// AberrationPhoton returns the angle in [0, π] between a photon's direction
// of travel and the boost direction, seen after the boost. The photon
// direction is pushed away from the boost direction.
func AberrationPhoton(beta, theta float64) (float64, error) {
	if err := checkBeta("AberrationPhoton", beta); err != nil {
		return 0, err
	}
	cos := math.Cos(theta)
	return acos((cos - beta) / (1 - beta*cos)), nil
}

// StickAngle returns the angle to the boost direction of a stick seen from a
// frame moving at β along that direction, when the stick lies at θ in its
// rest frame. Only the component along the boost contracts:
// tan θ' = Γ tan θ.
func StickAngle(beta, theta float64) (float64, error) {
	g, err := Gamma(beta)
	if err != nil {
		return 0, fmt.Errorf("StickAngle: %w", err)
	}
	sin, cos := math.Sincos(theta)
	return math.Atan2(g*sin, cos), nil
}

// TransformVelocity returns the velocity v of an object as seen from a
// frame moving with velocity frame. It boosts the four-velocity and reads
// the velocity back, so it covers the non-collinear case; for collinear
// speeds it reduces to (v − β)/(1 − vβ).
func TransformVelocity(frame, v core.Velocity) (core.Velocity, error) {
	out, err := velocityOfFour(transform.NewBoost(frame).ApplyVector(FourVelocity(v)))
	if err != nil {
		return core.Velocity{}, fmt.Errorf("TransformVelocity: %w", err)
	}
	return out, nil
}

// UntransformVelocity is the inverse of TransformVelocity: given the
// velocity seen from the moving frame it returns the one in the original
// frame.
func UntransformVelocity(frame, primed core.Velocity) (core.Velocity, error) {
	out, err := velocityOfFour(transform.NewBoost(frame).ReverseVector(FourVelocity(primed)))
	if err != nil {
		return core.Velocity{}, fmt.Errorf("UntransformVelocity: %w", err)
	}
	return out, nil
}

// velocityOfFour reads dr/dct off a time-like four-vector.
func velocityOfFour(u core.FourVector) (core.Velocity, error) {
	return core.VelocityOf(u.Spatial().Times(1 / u.CT()))
}

// FourVelocity returns (Γ, Γv), the unit time-like tangent of a worldline.
func FourVelocity(v core.Velocity) core.FourVector {
	g := v.Gamma()
	return core.FourVectorFrom(g, v.Vector().Times(g))
}

// FourPhaseGradient returns (|k|, k), the light-like wave four-vector of a
// plane light wave with spatial phase gradient k.
func FourPhaseGradient(k core.PhaseGradient) core.FourVector {
	return core.FourVectorFrom(k.Magnitude(), k.Vector())
}

// ThomasPrecession returns the precession rate Γ²/(Γ+1)·(a×v) of a spinning
// object with coordinate acceleration a and velocity v. The result is a
// pseudo-vector: its direction is the precession axis and its magnitude the
// angular rate per unit ct.
func ThomasPrecession(a core.Acceleration, v core.Velocity) core.AxisAngle {
	g := v.Gamma()
	return core.AxisAngleOf(a.Vector().Cross(v.Vector()).Times(g * g / (g + 1)))
}

func checkBeta(fn string, beta float64) error {
	if math.IsNaN(beta) || beta <= -1 || beta >= 1 {
		return fmt.Errorf("%s(β=%g): %w", fn, beta, core.ErrSpeedLimit)
	}
	return nil
}

// acos clamps rounding overshoot before taking the arc cosine.
func acos(x float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, x)))
}
