package feasibility

import (
	"math"

	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/geo"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

const fwLandAngleParam = "FW_LND_ANG"

// checkFixedWingLanding walks the mission looking for a landing waypoint;
// when found, the previous item is checked as the approach entrance at a
// feasible distance and altitude given the configured glide slope.
func (r *run) checkFixedWingLanding() bool {
	landingValid := false
	doLandStartIndex := 0
	landingApproachIndex := 0

	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.storageFailure()
			return false
		}

		switch {
		case it.Command == mission.CmdDoLandStart:
			if r.result.HasLanding {
				r.emit(events.Error, events.MultipleLandStart, "Mission rejected: more than one land start commands")
				return false
			}
			r.result.HasLanding = true
			doLandStartIndex = i

		case it.Command == mission.CmdLand:
			r.result.HasLanding = true

			if i == 0 {
				r.emit(events.Error, events.StartsWithLanding, "Mission rejected: starts with landing")
				return false
			}

			handle, ok := r.c.Params.Find(fwLandAngleParam)
			if !ok {
				r.emit(events.Error, events.LandAngleParamMissing, "Mission rejected: FW_LND_ANG parameter is missing")
				return false
			}
			landAngleDeg := r.c.Params.Get(handle)

			landingApproachIndex = i - 1
			prev, err := r.item(landingApproachIndex)
			if err != nil {
				r.storageFailure()
				return false
			}

			if !mission.HasPosition(prev.Command) {
				r.emit(events.Error, events.ApproachRequired, "Mission rejected: landing approach is required")
				return false
			}

			landAltAMSL := it.Altitude
			if it.AltitudeIsRelative {
				landAltAMSL += r.vs.Home.Alt
			}
			entranceAltAMSL := prev.Altitude
			if prev.AltitudeIsRelative {
				entranceAltAMSL += r.vs.Home.Alt
			}
			deltaH := entranceAltAMSL - landAltAMSL

			if deltaH < config.FloatEpsilon {
				r.emit(events.Error, events.ApproachBelowLand, "Mission rejected: the approach waypoint must be above the landing point")
				return false
			}

			var approachDistance float64
			switch prev.Command {
			case mission.CmdLoiterToAlt:
				orbitToLand := geo.Distance(prev.Lat, prev.Lon, it.Lat, it.Lon)
				orbitRadius := math.Abs(prev.LoiterRadius)
				if orbitToLand <= orbitRadius {
					r.emit(events.Error, events.LandInsideOrbit, "Mission rejected: the landing point must be outside the orbit radius")
					return false
				}
				approachDistance = math.Sqrt(orbitToLand*orbitToLand - orbitRadius*orbitRadius)

			case mission.CmdWaypoint:
				approachDistance = geo.Distance(prev.Lat, prev.Lon, it.Lat, it.Lon)

			default:
				r.emit(events.Error, events.UnsupportedApproach,
					"Mission rejected: unsupported landing approach entrance waypoint type. Only ORBIT_TO_ALT or WAYPOINT allowed")
				return false
			}

			glideSlope := deltaH / approachDistance
			maxGlideSlope := math.Tan(geo.Radians(landAngleDeg + config.GlideSlopeBufferDegrees))

			if glideSlope > maxGlideSlope {
				r.emit(events.Error, events.GlideSlopeTooSteep,
					"Mission rejected: the landing glide slope is steeper than the vehicle setting of {1} degrees", landAngleDeg)

				acceptableEntranceAlt := math.Floor(maxGlideSlope * approachDistance)
				acceptableLandingDist := math.Ceil(deltaH / maxGlideSlope)
				r.emit(events.Error, events.CorrectGlideSlope,
					"Reduce the glide slope, lower the entrance altitude {1} meters, or increase the landing approach distance {2} meters",
					acceptableEntranceAlt, acceptableLandingDist)
				return false
			}

			landingValid = true

		case it.Command == mission.CmdReturnToLaunch:
			if r.result.HasLanding && doLandStartIndex < i {
				r.emit(events.Error, events.LandBeforeRTL, "Mission rejected: land start item before RTL item is not possible")
				return false
			}
		}
	}

	if r.result.HasLanding && (!landingValid || doLandStartIndex > landingApproachIndex) {
		r.emit(events.Error, events.InvalidLandStart, "Mission rejected: invalid land start")
		return false
	}

	return true
}
