package feasibility

import (
	"math"

	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/geo"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// checkDistanceToFirstWaypoint walks items in order and, for the first
// positional item found, requires it be within MaxDistanceFirstWaypoint of
// home. A mission with no positional items passes trivially.
func (r *run) checkDistanceToFirstWaypoint() bool {
	if r.cfg.MaxDistanceFirstWaypoint <= 0 {
		return true
	}

	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.storageFailure()
			return false
		}
		if !mission.HasPosition(it.Command) {
			continue
		}

		dist := geo.Distance(it.Lat, it.Lon, r.vs.Home.Lat, r.vs.Home.Lon)
		if dist >= r.cfg.MaxDistanceFirstWaypoint {
			r.emit(events.Error, events.FirstWaypointTooFar,
				"First waypoint too far away: {1}m (maximum: {2}m)", dist, r.cfg.MaxDistanceFirstWaypoint)
			r.result.Warning = true
			return false
		}
		return true
	}

	return true
}

// checkDistancesBetweenWaypoints enforces the per-segment distance cap and
// the gate-coincidence rule between consecutive positional items.
func (r *run) checkDistancesBetweenWaypoints() bool {
	if r.cfg.MaxDistanceBetweenWaypoints <= 0 {
		return true
	}

	lastLat := math.NaN()
	lastLon := math.NaN()
	lastCmd := mission.CmdUnknown

	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.storageFailure()
			return false
		}
		if !mission.HasPosition(it.Command) {
			continue
		}

		if geo.IsFinite(lastLat) && geo.IsFinite(lastLon) {
			dist := geo.Distance(it.Lat, it.Lon, lastLat, lastLon)

			if dist > r.cfg.MaxDistanceBetweenWaypoints {
				r.emit(events.Error, events.WaypointDistanceTooFar,
					"Distance between waypoints too far: {1}m (maximum: {2}m)", dist, r.cfg.MaxDistanceBetweenWaypoints)
				r.result.Warning = true
				return false
			}

			if dist < config.GateCoincidenceDistanceMeters && (it.Command == mission.CmdConditionGate || lastCmd == mission.CmdConditionGate) {
				r.emit(events.Error, events.GateCoincidence,
					"Distance between waypoint and gate too close: {1}m (minimum: {2}m)", dist, config.GateCoincidenceDistanceMeters)
				r.result.Warning = true
				return false
			}
		}

		lastLat, lastLon, lastCmd = it.Lat, it.Lon, it.Command
	}

	return true
}
