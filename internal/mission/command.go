// Package mission holds the mission item data model and the pure,
// table-driven predicates over the command enumeration.
package mission

// Command is the closed set of navigation and ancillary mission item
// commands the feasibility checker understands. Unlike the source this was
// distilled from, which tests a raw command integer against ~35 inline
// disjunctions in two different places, the set is modeled once here as a
// tagged enum with table-driven membership, so "supported" and
// "allowed before takeoff" can't silently drift out of sync with each other.
type Command int

const (
	CmdUnknown Command = iota

	// positional navigation
	CmdWaypoint
	CmdLoiterUnlimited
	CmdLoiterTimeLimit
	CmdLoiterToAlt
	CmdTakeoff
	CmdVTOLTakeoff
	CmdLand
	CmdVTOLLand
	CmdReturnToLaunch

	// non-positional navigation control
	CmdIdle
	CmdDelay
	CmdConditionGate // listed here, but HasPosition is true (see positionalCommands)
	CmdDoJump
	CmdDoChangeSpeed
	CmdDoLandStart
	CmdDoSetHome

	// actuator
	CmdDoSetServo
	CmdDoSetActuator
	CmdDoWinch
	CmdDoGripper
	CmdDoTriggerControl

	// payload / imaging
	CmdDoDigicamControl
	CmdImageStartCapture
	CmdImageStopCapture
	CmdVideoStartCapture
	CmdVideoStopCapture
	CmdDoControlVideo
	CmdDoMountConfigure
	CmdDoMountControl
	CmdDoGimbalManagerPitchYaw
	CmdDoGimbalManagerConfigure
	CmdDoSetROI
	CmdDoSetROILocation
	CmdDoSetROIWPNextOffset
	CmdDoSetROINone
	CmdDoSetCamTriggDist
	CmdObliqueSurvey
	CmdDoSetCamTriggInterval
	CmdSetCameraMode
	CmdSetCameraZoom
	CmdSetCameraFocus
	CmdDoVTOLTransition
)

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "UNKNOWN"
}

var commandNames = map[Command]string{
	CmdWaypoint:                 "WAYPOINT",
	CmdLoiterUnlimited:          "LOITER_UNLIMITED",
	CmdLoiterTimeLimit:          "LOITER_TIME_LIMIT",
	CmdLoiterToAlt:              "LOITER_TO_ALT",
	CmdTakeoff:                  "TAKEOFF",
	CmdVTOLTakeoff:              "VTOL_TAKEOFF",
	CmdLand:                     "LAND",
	CmdVTOLLand:                 "VTOL_LAND",
	CmdReturnToLaunch:           "RETURN_TO_LAUNCH",
	CmdIdle:                     "IDLE",
	CmdDelay:                    "DELAY",
	CmdConditionGate:            "CONDITION_GATE",
	CmdDoJump:                   "DO_JUMP",
	CmdDoChangeSpeed:            "DO_CHANGE_SPEED",
	CmdDoLandStart:              "DO_LAND_START",
	CmdDoSetHome:                "DO_SET_HOME",
	CmdDoSetServo:               "DO_SET_SERVO",
	CmdDoSetActuator:            "DO_SET_ACTUATOR",
	CmdDoWinch:                  "DO_WINCH",
	CmdDoGripper:                "DO_GRIPPER",
	CmdDoTriggerControl:         "DO_TRIGGER_CONTROL",
	CmdDoDigicamControl:         "DO_DIGICAM_CONTROL",
	CmdImageStartCapture:        "IMAGE_START_CAPTURE",
	CmdImageStopCapture:         "IMAGE_STOP_CAPTURE",
	CmdVideoStartCapture:        "VIDEO_START_CAPTURE",
	CmdVideoStopCapture:         "VIDEO_STOP_CAPTURE",
	CmdDoControlVideo:           "DO_CONTROL_VIDEO",
	CmdDoMountConfigure:         "DO_MOUNT_CONFIGURE",
	CmdDoMountControl:           "DO_MOUNT_CONTROL",
	CmdDoGimbalManagerPitchYaw:  "DO_GIMBAL_MANAGER_PITCHYAW",
	CmdDoGimbalManagerConfigure: "DO_GIMBAL_MANAGER_CONFIGURE",
	CmdDoSetROI:                 "DO_SET_ROI",
	CmdDoSetROILocation:         "DO_SET_ROI_LOCATION",
	CmdDoSetROIWPNextOffset:     "DO_SET_ROI_WPNEXT_OFFSET",
	CmdDoSetROINone:             "DO_SET_ROI_NONE",
	CmdDoSetCamTriggDist:        "DO_SET_CAM_TRIGG_DIST",
	CmdObliqueSurvey:            "OBLIQUE_SURVEY",
	CmdDoSetCamTriggInterval:    "DO_SET_CAM_TRIGG_INTERVAL",
	CmdSetCameraMode:            "SET_CAMERA_MODE",
	CmdSetCameraZoom:            "SET_CAMERA_ZOOM",
	CmdSetCameraFocus:           "SET_CAMERA_FOCUS",
	CmdDoVTOLTransition:         "DO_VTOL_TRANSITION",
}

// positionalCommands is the has-position subset: items whose lat/lon are
// meaningful and that participate in distance/geofence checks.
var positionalCommands = map[Command]bool{
	CmdWaypoint:        true,
	CmdLoiterUnlimited: true,
	CmdLoiterTimeLimit: true,
	CmdLoiterToAlt:     true,
	CmdTakeoff:         true,
	CmdVTOLTakeoff:     true,
	CmdLand:            true,
	CmdVTOLLand:        true,
	CmdReturnToLaunch:  true,
	CmdConditionGate:   true,
}

// allowedBeforeTakeoff is the set of commands that may legally appear before
// the mission's first takeoff item.
var allowedBeforeTakeoff = map[Command]bool{
	CmdIdle:                     true,
	CmdDelay:                    true,
	CmdDoJump:                   true,
	CmdDoChangeSpeed:            true,
	CmdDoSetHome:                true,
	CmdDoSetServo:               true,
	CmdDoLandStart:              true,
	CmdDoTriggerControl:         true,
	CmdDoDigicamControl:         true,
	CmdImageStartCapture:        true,
	CmdImageStopCapture:         true,
	CmdVideoStartCapture:        true,
	CmdVideoStopCapture:         true,
	CmdDoControlVideo:           true,
	CmdDoMountConfigure:         true,
	CmdDoMountControl:           true,
	CmdDoGimbalManagerPitchYaw:  true,
	CmdDoGimbalManagerConfigure: true,
	CmdDoSetROI:                 true,
	CmdDoSetROILocation:         true,
	CmdDoSetROIWPNextOffset:     true,
	CmdDoSetROINone:             true,
	CmdDoSetCamTriggDist:        true,
	CmdObliqueSurvey:            true,
	CmdDoSetCamTriggInterval:    true,
	CmdSetCameraMode:            true,
	CmdSetCameraZoom:            true,
	CmdSetCameraFocus:           true,
	CmdDoVTOLTransition:         true,
}

// supportedCommands is every command the checker knows how to reason about.
// Anything outside this set fails validation rather than being silently
// skipped.
var supportedCommands = map[Command]bool{
	CmdIdle: true, CmdWaypoint: true, CmdLoiterUnlimited: true, CmdLoiterTimeLimit: true,
	CmdReturnToLaunch: true, CmdLand: true, CmdTakeoff: true, CmdLoiterToAlt: true,
	CmdVTOLTakeoff: true, CmdVTOLLand: true, CmdDelay: true, CmdConditionGate: true,
	CmdDoWinch: true, CmdDoGripper: true, CmdDoJump: true, CmdDoChangeSpeed: true,
	CmdDoSetHome: true, CmdDoSetServo: true, CmdDoSetActuator: true, CmdDoLandStart: true,
	CmdDoTriggerControl: true, CmdDoDigicamControl: true, CmdImageStartCapture: true,
	CmdImageStopCapture: true, CmdVideoStartCapture: true, CmdVideoStopCapture: true,
	CmdDoControlVideo: true, CmdDoMountConfigure: true, CmdDoMountControl: true,
	CmdDoGimbalManagerPitchYaw: true, CmdDoGimbalManagerConfigure: true, CmdDoSetROI: true,
	CmdDoSetROILocation: true, CmdDoSetROIWPNextOffset: true, CmdDoSetROINone: true,
	CmdDoSetCamTriggDist: true, CmdObliqueSurvey: true, CmdDoSetCamTriggInterval: true,
	CmdSetCameraMode: true, CmdSetCameraZoom: true, CmdSetCameraFocus: true,
	CmdDoVTOLTransition: true,
}

// Supported reports whether cmd is in the known command set.
func Supported(cmd Command) bool {
	return supportedCommands[cmd]
}

// HasPosition reports whether cmd carries a meaningful lat/lon.
func HasPosition(cmd Command) bool {
	return positionalCommands[cmd]
}

// AllowedBeforeTakeoff reports whether cmd may legally precede the first
// takeoff item in a mission.
func AllowedBeforeTakeoff(cmd Command) bool {
	return allowedBeforeTakeoff[cmd]
}

// IsTakeoff reports whether cmd is one of the two takeoff commands.
func IsTakeoff(cmd Command) bool {
	return cmd == CmdTakeoff || cmd == CmdVTOLTakeoff
}

// IsLand reports whether cmd is one of the two terminal landing commands
// (not DO_LAND_START, which only marks the start of a landing sub-sequence).
func IsLand(cmd Command) bool {
	return cmd == CmdLand || cmd == CmdVTOLLand
}
