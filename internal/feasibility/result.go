// Package feasibility is the pure mission feasibility validator: given a
// persisted mission item sequence, a vehicle state snapshot, configuration,
// and a geofence predicate, it decides whether the mission is safely
// executable and emits a structured reason for every way it is not.
package feasibility

// Result is created fresh at the start of every Check call and discarded
// after; no state persists across calls.
type Result struct {
	// Warning is set by the non-fatal WaypointBelowHome condition, and
	// also alongside the FirstWaypointTooFar, WaypointDistanceTooFar and
	// GateCoincidence failures. It is monotonic within a call: once set it
	// is never cleared before the call returns.
	Warning bool

	// HasTakeoff and HasLanding are derived from the mission, never
	// supplied by the caller.
	HasTakeoff bool
	HasLanding bool
}
