package events

import "testing"

func TestMemorySinkRecordsInOrder(t *testing.T) {
	s := NewMemorySink()
	s.Emit(Record{ID: TakeoffNotFirst, Severity: Error})
	s.Emit(Record{ID: WaypointBelowHome, Severity: Warning})

	if len(s.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(s.Records))
	}
	if s.Records[0].ID != TakeoffNotFirst || s.Records[1].ID != WaypointBelowHome {
		t.Fatalf("Records out of order: %+v", s.Records)
	}
}

func TestMemorySinkHas(t *testing.T) {
	s := NewMemorySink()
	s.Emit(Record{ID: GlideSlopeTooSteep})

	if !s.Has(GlideSlopeTooSteep) {
		t.Fatal("Has(GlideSlopeTooSteep): want true")
	}
	if s.Has(LandBeforeRTL) {
		t.Fatal("Has(LandBeforeRTL): want false, never emitted")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		Info:    "info",
		Warning: "warning",
		Error:   "error",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Fatalf("%v.String() = %q, want %q", int(sev), got, want)
		}
	}
}
