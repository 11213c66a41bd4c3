package feasibility

import (
	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// checkMissionItemValidity rejects unsupported commands, out-of-range
// DO_SET_SERVO parameters, and a mission that starts with LAND while the
// vehicle is already landed.
func (r *run) checkMissionItemValidity() bool {
	for i := 0; i < r.m.Count; i++ {
		it, err := r.item(i)
		if err != nil {
			r.emit(events.Error, events.StorageFailure, "Mission rejected: cannot access mission storage")
			return false
		}

		if !mission.Supported(it.Command) {
			r.emit(events.Error, events.UnsupportedCommand,
				"Mission rejected: item {1}: unsupported command: {2}", i+1, it.Command)
			return false
		}

		if it.Command == mission.CmdDoSetServo {
			index := it.Params[0]
			if index < 0 || index > 5 {
				r.emit(events.Error, events.ActuatorIndexOutOfBounds,
					"Actuator number {1} is out of bounds 0..5", index)
				return false
			}

			value := it.Params[1]
			if value < -config.PWMDefaultMax || value > config.PWMDefaultMax {
				r.emit(events.Error, events.ActuatorValueOutOfBounds,
					"Actuator value {1} is out of bounds -{2}..{2}", value, config.PWMDefaultMax)
				return false
			}
		}

		if i == 0 && it.Command == mission.CmdLand && r.vs.Landed {
			r.emit(events.Error, events.StartsWithLanding, "Mission rejected: starts with landing")
			return false
		}
	}

	return true
}
