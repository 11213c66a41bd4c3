package feasibility

import (
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/vehicle"
)

// checkTakeoffLandAvailable arbitrates the derived has-takeoff/has-landing
// flags against the vehicle's required-items policy.
func (r *run) checkTakeoffLandAvailable() bool {
	hasTakeoff, hasLanding := r.result.HasTakeoff, r.result.HasLanding

	switch r.vs.TakeoffLandRequired {
	case vehicle.PolicyNone:
		return true

	case vehicle.PolicyRequireTakeoff:
		if !hasTakeoff {
			r.emit(events.Error, events.TakeoffRequired, "Mission rejected: takeoff waypoint required")
			return false
		}
		return true

	case vehicle.PolicyRequireLanding:
		if !hasLanding {
			r.emit(events.Error, events.LandingRequired, "Mission rejected: landing waypoint/pattern required")
			return false
		}
		return true

	case vehicle.PolicyRequireBoth:
		if !(hasTakeoff && hasLanding) {
			r.emit(events.Error, events.TakeoffOrLandingMissing, "Mission rejected: takeoff or landing item missing")
			return false
		}
		return true

	case vehicle.PolicyRequireParity:
		if hasTakeoff == hasLanding {
			return true
		}
		if hasTakeoff {
			r.emit(events.Error, events.AddLandingOrRemoveTakeoff, "Mission rejected: add landing item or remove takeoff")
		} else {
			r.emit(events.Error, events.AddTakeoffOrRemoveLanding, "Mission rejected: add takeoff item or remove landing")
		}
		return false

	default:
		return true
	}
}
