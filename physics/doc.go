// SPDX-License-Identifier: MIT

// Package physics collects the kinematic formulas of special relativity
// that sit on top of the core value types, in units where c = 1.
//
//	Gamma, BetaFromGamma      - Lorentz factor Γ = 1/√(1−β²) and its inverse
//	Rapidity, BetaFromRapidity - w = atanh β; rapidities of collinear boosts add
//	AddCollinear              - (β1+β2)/(1+β1β2)
//	Doppler                   - D = 1/(Γ(1 − β cos θ))
//	DopplerTemperature        - T = D·T0 for a black-body spectrum
//	MagnitudeShift            - change of apparent magnitude of a black body
//	AberrationDetector        - cos θ' = (cos θ + β)/(1 + β cos θ)
//	AberrationPhoton          - cos θ' = (cos θ − β)/(1 − β cos θ)
//	StickAngle                - tan θ' = Γ tan θ for a stick at rest
//	TransformVelocity         - velocity seen from a moving frame, any direction
//	UntransformVelocity       - its inverse
//	FourVelocity              - (Γ, Γv); its square is 1
//	FourPhaseGradient         - (|k|, k) for a light wave; its square is 0
//	ThomasPrecession          - Γ²/(Γ+1) a×v, the spin precession rate
//
// Angles are in radians. Speeds outside (−1, 1) are rejected with
// core.ErrSpeedLimit; other out-of-domain inputs with ErrBadParameter.
package physics
