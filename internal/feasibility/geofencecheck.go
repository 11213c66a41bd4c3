package feasibility

import (
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// checkGeofence is skipped entirely unless the geofence is valid. It
// normalizes relative altitudes to AMSL and checks containment for
// positional items only.
func (r *run) checkGeofence() bool {
	if !r.c.Geofence.Valid() {
		return true
	}

	if r.c.Geofence.IsHomeRequired() && !r.vs.HomeGlobalPositionValid {
		r.emit(events.Error, events.GeofenceRequiresHome, "Geofence requires a valid home position")
		return false
	}

	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.storageFailure()
			return false
		}

		if it.AltitudeIsRelative && !r.vs.HomeGlobalPositionValid {
			r.emit(events.Error, events.GeofenceRequiresHome, "Geofence requires a valid home position")
			return false
		}

		altAMSL := it.Altitude
		if it.AltitudeIsRelative {
			altAMSL += r.vs.Home.Alt
		}

		if mission.HasPosition(it.Command) && !r.c.Geofence.Contains(it.Lat, it.Lon, altAMSL) {
			r.emit(events.Error, events.GeofenceViolation, "Geofence violation for waypoint {1}", i+1)
			return false
		}
	}

	return true
}
