package physics

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func openTestStore(t *testing.T) *TrajectoryStore {
	t.Helper()
	s, err := OpenTrajectoryStore(filepath.Join(t.TempDir(), "trajectories.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	tr := NewTrajectory()
	for tt := 0.0; tt < 10.0; tt += 0.5 {
		tr.Append(tt, DegreesOfFreedom{
			Position: mgl64.Vec3{tt, -tt, 2 * tt},
			Velocity: mgl64.Vec3{1, -1, 2},
		})
	}
	if err := s.WriteTrajectory("probe", tr); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadTrajectory("probe")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != tr.Len() {
		t.Fatalf("%d samples, want %d", got.Len(), tr.Len())
	}
	for i := range tr.times {
		if got.times[i] != tr.times[i] || got.states[i] != tr.states[i] {
			t.Fatalf("sample %d: %g %v, want %g %v",
				i, got.times[i], got.states[i], tr.times[i], tr.states[i])
		}
	}
}

func TestStoreOverwrites(t *testing.T) {
	s := openTestStore(t)

	tr := NewTrajectory()
	tr.Append(0, DegreesOfFreedom{})
	tr.Append(1, DegreesOfFreedom{})
	if err := s.WriteTrajectory("probe", tr); err != nil {
		t.Fatal(err)
	}
	tr.Append(2, DegreesOfFreedom{})
	if err := s.WriteTrajectory("probe", tr); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadTrajectory("probe")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 3 {
		t.Errorf("%d samples after rewrite, want 3", got.Len())
	}
}

func TestStoreUnknownBody(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ReadTrajectory("nobody"); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("reading absent body: %v", err)
	}
}

func TestStoreEphemeris(t *testing.T) {
	s := openTestStore(t)
	e, _, _ := circularPair(t, 0.01)
	e.Prolong(0.1)
	if err := s.WriteEphemeris(e); err != nil {
		t.Fatal(err)
	}
	names, err := s.Bodies()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "primary" || names[1] != "secondary" {
		t.Errorf("stored bodies %v", names)
	}
}
