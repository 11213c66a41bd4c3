package feasibility

import (
	"context"

	"github.com/google/uuid"

	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/geofence"
	"github.com/tiiuae/missionfeasibility/internal/metrics"
	"github.com/tiiuae/missionfeasibility/internal/mission"
	"github.com/tiiuae/missionfeasibility/internal/params"
	"github.com/tiiuae/missionfeasibility/internal/vehicle"
)

// Checker runs the feasibility sub-checks against its external
// collaborators: a mission item reader, a geofence predicate, a parameter
// store, and an event sink. It holds no per-mission state between calls.
type Checker struct {
	Reader   mission.Reader
	Geofence geofence.Geofence
	Params   params.Store
	Sink     events.Sink
	Metrics  metrics.Recorder
}

// New builds a Checker. geo, paramStore, and sink must not be nil; metrics
// may be nil, in which case observations are discarded.
func New(reader mission.Reader, geo geofence.Geofence, paramStore params.Store, sink events.Sink, rec metrics.Recorder) *Checker {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Checker{Reader: reader, Geofence: geo, Params: paramStore, Sink: sink, Metrics: rec}
}

// run is the scratch state threaded through one Check call: it carries the
// request-scoped collaborators (context, mission address, vehicle state,
// config) plus the accumulating Result and a correlation ID stamped onto
// every emitted event from this call.
type run struct {
	ctx           context.Context
	c             *Checker
	m             mission.Mission
	vs            vehicle.State
	cfg           config.Config
	correlationID string
	result        *Result
}

func (r *run) emit(severity events.Severity, id, template string, args ...interface{}) {
	r.c.Sink.Emit(events.Record{
		ID:            id,
		Severity:      severity,
		Template:      template,
		Args:          args,
		CorrelationID: r.correlationID,
	})
}

func (r *run) item(index int) (mission.Item, error) {
	return r.c.Reader.ReadAt(r.ctx, r.m.StorageID, index)
}

func (r *run) storageFailure() {
	r.emit(events.Error, events.StorageFailure, "Error reading mission storage")
}

// Check runs every sub-check against m in the fixed order §4.1 specifies,
// aggregating failures rather than short-circuiting at the first one, so a
// caller sees every reason a mission is infeasible in a single call.
func (c *Checker) Check(ctx context.Context, m mission.Mission, vs vehicle.State, cfg config.Config) (bool, Result) {
	result := &Result{}

	if m.Count <= 0 {
		c.Metrics.ObserveCheck(false, "EmptyMission", 0)
		return false, *result
	}

	r := &run{
		ctx:           ctx,
		c:             c,
		m:             m,
		vs:            vs,
		cfg:           cfg,
		correlationID: uuid.New().String(),
		result:        result,
	}

	failed := false
	firstFailure := ""
	fail := func(id string) {
		failed = true
		if firstFailure == "" {
			firstFailure = id
		}
	}

	if !vs.HomeAltValid {
		r.emit(events.Info, events.NoPositionLock, "Not yet ready for mission, no position lock")
		fail(events.NoPositionLock)
	} else if !r.checkDistanceToFirstWaypoint() {
		fail(events.FirstWaypointTooFar)
	}

	if !r.checkMissionItemValidity() {
		fail("ItemValidity")
	}
	if !r.checkDistancesBetweenWaypoints() {
		fail("PairwiseDistance")
	}
	if !r.checkGeofence() {
		fail("Geofence")
	}
	if !r.checkHomePositionAltitude() {
		fail("HomeAltitude")
	}
	if !r.checkTakeoff() {
		fail("Takeoff")
	}

	switch vs.VehicleType {
	case vehicle.VTOL:
		if !r.checkVTOLLanding() {
			fail("Landing")
		}
	case vehicle.FixedWing:
		if !r.checkFixedWingLanding() {
			fail("Landing")
		}
	default:
		result.HasLanding = r.hasMissionLanding()
	}

	if !r.checkTakeoffLandAvailable() {
		fail("Policy")
	}

	c.Metrics.ObserveCheck(!failed, firstFailure, m.Count)

	return !failed, *result
}
