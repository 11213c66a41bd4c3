// Package config holds the validator's tunables and a Viper-backed loader.
package config

import "github.com/tiiuae/missionfeasibility/internal/vehicle"

// Config is the validator's configuration, unchanged in meaning from the
// distilled spec: both distance thresholds are unchecked when <= 0.
//
// RequiredItemsPolicy lives here rather than on vehicle.State because it is
// the CLI's loader-facing knob: a one-shot invocation has no navigator to
// query, so it reads the policy from file/env and copies it onto the
// vehicle.State it builds before calling Checker.Check. The checker itself
// never reads this field directly, only vehicle.State.TakeoffLandRequired.
type Config struct {
	MaxDistanceFirstWaypoint    float64
	MaxDistanceBetweenWaypoints float64
	RequiredItemsPolicy         vehicle.Policy
}

// Default returns the compiled-in defaults: no distance limits, no
// required-items policy.
func Default() Config {
	return Config{
		MaxDistanceFirstWaypoint:    0,
		MaxDistanceBetweenWaypoints: 0,
		RequiredItemsPolicy:         vehicle.PolicyNone,
	}
}

// Platform-wide constants referenced by the validator. These are fixed
// parts of the validation rules, not per-mission configuration.
const (
	// NavEpsilonPosition is the acceptance-radius epsilon used when
	// deciding whether a takeoff item's own acceptance radius should
	// override the vehicle default.
	NavEpsilonPosition = 0.05

	// PWMDefaultMax bounds DO_SET_SERVO actuator values to [-max, max].
	PWMDefaultMax = 2000.0

	// GateCoincidenceDistanceMeters is the minimum distance between a
	// CONDITION_GATE and its neighbor before the segment direction is
	// considered undefined.
	GateCoincidenceDistanceMeters = 0.05

	// GlideSlopeBufferDegrees absorbs floating-point noise at the glide
	// slope boundary.
	GlideSlopeBufferDegrees = 0.1

	// FloatEpsilon is the tolerance used for the approach-above-land check.
	FloatEpsilon = 1.1920929e-7
)
