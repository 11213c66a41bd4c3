package feasibility

import (
	"context"
	"testing"

	"github.com/tiiuae/missionfeasibility/internal/config"
	"github.com/tiiuae/missionfeasibility/internal/events"
	"github.com/tiiuae/missionfeasibility/internal/geofence"
	"github.com/tiiuae/missionfeasibility/internal/mission"
	"github.com/tiiuae/missionfeasibility/internal/params"
	"github.com/tiiuae/missionfeasibility/internal/storage"
	"github.com/tiiuae/missionfeasibility/internal/vehicle"
)

const testStorageID = "test"

func newChecker(items []mission.Item, paramValues map[string]float64) (*Checker, *events.MemorySink, *storage.Memory) {
	mem := storage.NewMemory()
	mem.Put(testStorageID, items)
	sink := events.NewMemorySink()
	store := params.NewMapStore(paramValues)
	c := New(mem, geofence.Null{}, store, sink, nil)
	return c, sink, mem
}

func homeState(vt vehicle.Type, landed bool) vehicle.State {
	return vehicle.State{
		HomeGlobalPositionValid: true,
		HomeAltValid:            true,
		Home:                    vehicle.Position{Lat: 47.3977, Lon: 8.5456, Alt: 488},
		Landed:                  landed,
		VehicleType:             vt,
		TakeoffLandRequired:     vehicle.PolicyNone,
		DefaultAcceptanceRadius: 2.0,
	}
}

// metersNorth returns a latitude offset by approximately metersNorth meters,
// close enough for test fixtures (not a general-purpose projection).
func metersNorth(lat float64, meters float64) float64 {
	return lat + meters/111195.0
}

func TestS1MinimalValidMulticopterMission(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.3977, Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdWaypoint, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, mem := newChecker(items, nil)

	vs := homeState(vehicle.Multicopter, false)
	vs.TakeoffLandRequired = vehicle.PolicyRequireBoth
	cfg := config.Default()

	feasible, result := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, vs, cfg)
	_ = mem

	if !feasible {
		t.Fatalf("expected feasible mission, got events: %+v", sink.Records)
	}
	if result.Warning {
		t.Errorf("expected no warning, got one")
	}
	if len(sink.Records) != 0 {
		t.Errorf("expected no events, got %+v", sink.Records)
	}
}

func TestS2TakeoffAltitudeTooLow(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.3977, Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 10},
		{Command: mission.CmdWaypoint, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, nil)

	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, homeState(vehicle.Multicopter, false), config.Default())

	if feasible {
		t.Fatal("expected infeasible mission")
	}
	if !sink.Has(events.TakeoffAltTooLow) {
		t.Errorf("expected TakeoffAltTooLow event, got %+v", sink.Records)
	}
}

func TestS3TakeoffNotFirst(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdWaypoint, Lat: 47.3977, Lon: 8.5456, Altitude: 5, AltitudeIsRelative: true},
		{Command: mission.CmdTakeoff, Lat: 47.3977, Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdLand, Lat: 47.3977, Lon: 8.5456, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, nil)

	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, homeState(vehicle.Multicopter, false), config.Default())

	if feasible {
		t.Fatal("expected infeasible mission")
	}
	if !sink.Has(events.TakeoffNotFirst) {
		t.Errorf("expected TakeoffNotFirst event, got %+v", sink.Records)
	}
}

func TestS4FixedWingGlideSlopeTooSteep(t *testing.T) {
	// approach WAYPOINT 200m horizontal from LAND, deltaH=50m => slope 0.25
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.0, Lon: 8.0, Altitude: 60, AltitudeIsRelative: true, AcceptanceRadius: 10},
		{Command: mission.CmdWaypoint, Lat: metersNorth(47.0, 200), Lon: 8.0, Altitude: 50, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: 47.0, Lon: 8.0, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, map[string]float64{"FW_LND_ANG": 5.0})

	vs := homeState(vehicle.FixedWing, false)
	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, vs, config.Default())

	if feasible {
		t.Fatal("expected infeasible mission")
	}
	if !sink.Has(events.GlideSlopeTooSteep) {
		t.Errorf("expected GlideSlopeTooSteep event, got %+v", sink.Records)
	}
	if !sink.Has(events.CorrectGlideSlope) {
		t.Errorf("expected paired CorrectGlideSlope advisory, got %+v", sink.Records)
	}
}

func TestS5OrbitToAltApproachInsideOrbit(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.0, Lon: 8.0, Altitude: 60, AltitudeIsRelative: true, AcceptanceRadius: 10},
		{Command: mission.CmdLoiterToAlt, Lat: metersNorth(47.0, 80), Lon: 8.0, Altitude: 50, AltitudeIsRelative: true, LoiterRadius: 100},
		{Command: mission.CmdLand, Lat: 47.0, Lon: 8.0, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, map[string]float64{"FW_LND_ANG": 5.0})

	vs := homeState(vehicle.FixedWing, false)
	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, vs, config.Default())

	if feasible {
		t.Fatal("expected infeasible mission")
	}
	if !sink.Has(events.LandInsideOrbit) {
		t.Errorf("expected LandInsideOrbit event, got %+v", sink.Records)
	}
}

func TestS6GateCoincidence(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.0, Lon: 8.0, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdWaypoint, Lat: 47.001, Lon: 8.0, Altitude: 10, AltitudeIsRelative: true},
		{Command: mission.CmdConditionGate, Lat: 47.001, Lon: 8.0, Altitude: 10, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: 47.001, Lon: 8.0, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, nil)

	cfg := config.Default()
	cfg.MaxDistanceBetweenWaypoints = 100000

	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 4}, homeState(vehicle.Multicopter, false), cfg)

	if feasible {
		t.Fatal("expected infeasible mission")
	}
	if !sink.Has(events.GateCoincidence) {
		t.Errorf("expected GateCoincidence event, got %+v", sink.Records)
	}
}

func TestS7WarningOnlyBelowHome(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.3977, Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdWaypoint, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: -5, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 0, AltitudeIsRelative: true},
	}
	c, sink, _ := newChecker(items, nil)

	feasible, result := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, homeState(vehicle.Multicopter, false), config.Default())

	if !feasible {
		t.Fatalf("expected feasible mission despite warning, got events: %+v", sink.Records)
	}
	if !result.Warning {
		t.Error("expected result.Warning to be set")
	}
	if !sink.Has(events.WaypointBelowHome) {
		t.Errorf("expected WaypointBelowHome event, got %+v", sink.Records)
	}
}

func TestEmptyMissionAlwaysInfeasible(t *testing.T) {
	c, sink, _ := newChecker(nil, nil)
	feasible, _ := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 0}, homeState(vehicle.Multicopter, false), config.Default())
	if feasible {
		t.Fatal("expected empty mission to be infeasible")
	}
	if len(sink.Records) != 0 {
		t.Errorf("expected no events for empty mission, got %+v", sink.Records)
	}
}

func TestCheckIsPureAcrossCalls(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.3977, Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdWaypoint, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 10, AltitudeIsRelative: true},
		{Command: mission.CmdLand, Lat: metersNorth(47.3977, 100), Lon: 8.5456, Altitude: 0, AltitudeIsRelative: true},
	}
	c, _, _ := newChecker(items, nil)
	vs := homeState(vehicle.Multicopter, false)
	cfg := config.Default()

	f1, r1 := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, vs, cfg)
	f2, r2 := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 3}, vs, cfg)

	if f1 != f2 || r1.Warning != r2.Warning || r1.HasTakeoff != r2.HasTakeoff || r1.HasLanding != r2.HasLanding {
		t.Errorf("expected identical results across calls, got %+v vs %+v", r1, r2)
	}
}

func TestNoPositionalItemsPassesDistanceChecks(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdIdle},
		{Command: mission.CmdDelay},
	}
	c, sink, _ := newChecker(items, nil)
	cfg := config.Default()
	cfg.MaxDistanceFirstWaypoint = 10
	cfg.MaxDistanceBetweenWaypoints = 10

	vs := homeState(vehicle.Multicopter, false)
	c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 2}, vs, cfg)

	if sink.Has(events.FirstWaypointTooFar) || sink.Has(events.WaypointDistanceTooFar) {
		t.Errorf("expected no distance failures for non-positional mission, got %+v", sink.Records)
	}
}

func TestPolicyZeroNeverFails(t *testing.T) {
	c, sink, _ := newChecker(nil, nil)
	_ = sink
	vs := homeState(vehicle.Multicopter, false)
	vs.TakeoffLandRequired = vehicle.PolicyNone

	r := &run{ctx: context.Background(), c: c, vs: vs, result: &Result{}}
	if !r.checkTakeoffLandAvailable() {
		t.Error("policy none should never fail arbitration")
	}
}

func TestHasLandingFalseWithoutLandingCommands(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdTakeoff, Lat: 47.0, Lon: 8.0, Altitude: 10, AltitudeIsRelative: true, AcceptanceRadius: 2},
		{Command: mission.CmdWaypoint, Lat: 47.0, Lon: 8.0, Altitude: 10, AltitudeIsRelative: true},
	}
	c, _, _ := newChecker(items, nil)
	_, result := c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 2}, homeState(vehicle.Multicopter, false), config.Default())

	if result.HasLanding {
		t.Error("expected has_landing to be false without LAND/VTOL_LAND/DO_LAND_START")
	}
}

func TestMaxDistanceBetweenUncheckedWhenNonPositive(t *testing.T) {
	items := []mission.Item{
		{Command: mission.CmdWaypoint, Lat: 0, Lon: 0},
		{Command: mission.CmdWaypoint, Lat: 80, Lon: 0},
	}
	c, sink, _ := newChecker(items, nil)
	cfg := config.Default()
	cfg.MaxDistanceBetweenWaypoints = 0

	c.Check(context.Background(), mission.Mission{StorageID: testStorageID, Count: 2}, homeState(vehicle.Multicopter, false), cfg)

	if sink.Has(events.WaypointDistanceTooFar) {
		t.Error("expected no distance failure when MaxDistanceBetweenWaypoints <= 0")
	}
}
