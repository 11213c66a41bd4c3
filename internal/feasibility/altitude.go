package feasibility

import (
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// checkHomePositionAltitude rejects relative-altitude positional items when
// home altitude is unknown, and warns (without failing) when a positional
// item sits below home.
func (r *run) checkHomePositionAltitude() bool {
	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.storageFailure()
			return false
		}
		if !mission.HasPosition(it.Command) {
			continue
		}

		if it.AltitudeIsRelative && !r.vs.HomeAltValid {
			r.emit(events.Error, events.NoHomeRelativeAlt,
				"Mission rejected: no home position, waypoint {1} uses relative altitude", i+1)
			return false
		}

		altAMSL := it.Altitude
		if it.AltitudeIsRelative {
			altAMSL += r.vs.Home.Alt
		}

		if r.vs.HomeAltValid && altAMSL < r.vs.Home.Alt {
			r.result.Warning = true
			r.emit(events.Warning, events.WaypointBelowHome, "Waypoint {1} below home", i+1)
		}
	}

	return true
}
