package feasibility

import (
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// checkVTOLLanding mirrors checkFixedWingLanding's ordering rules (land-start
// uniqueness, RTL must not follow a land-start) without any glide-slope
// geometry.
func (r *run) checkVTOLLanding() bool {
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

		case mission.IsLand(it.Command):
			r.result.HasLanding = true

			if i == 0 {
				r.emit(events.Error, events.StartsWithLanding, "Mission rejected: starts with land waypoint")
				return false
			}
			landingApproachIndex = i - 1

		case it.Command == mission.CmdReturnToLaunch:
			if r.result.HasLanding && doLandStartIndex < i {
				r.emit(events.Error, events.LandBeforeRTL, "Mission rejected: land start item before RTL item is not possible")
				return false
			}
		}
	}

	if r.result.HasLanding && doLandStartIndex > landingApproachIndex {
		r.emit(events.Error, events.InvalidLandStart, "Mission rejected: invalid land start")
		return false
	}

	return true
}

// hasMissionLanding scans for any LAND command, without validating it. Used
// for multicopters (and any vehicle type that is neither VTOL nor
// fixed-wing), where landing geometry is not checked.
func (r *run) hasMissionLanding() bool {
	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			return false
		}
		if it.Command == mission.CmdLand {
			return true
		}
	}
	return false
}
