package physics

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"
	"errors"
	"math"
	"testing"
)

func TestEphemerisMessageRoundTrip(t *testing.T) {
	e, primary, _ := circularPair(t, math.Pi/1000)
	e.Prolong(2)

	var buf bytes.Buffer
	if err := e.WriteToMessage(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadEphemerisFromMessage(&buf, &McLachlanAtela4{})
	if err != nil {
		t.Fatal(err)
	}
	if decoded.TMin() != e.TMin() || decoded.TMax() != e.TMax() || decoded.Step() != e.Step() {
		t.Fatalf("timeline [%g, %g] step %g, want [%g, %g] step %g",
			decoded.TMin(), decoded.TMax(), decoded.Step(),
			e.TMin(), e.TMax(), e.Step())
	}

	db, err := decoded.Body(primary.Name)
	if err != nil {
		t.Fatal(err)
	}
	otr, _ := e.Trajectory(primary)
	dtr, err := decoded.Trajectory(db)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []float64{0, 0.77, 2} {
		want, err := otr.EvaluateDegreesOfFreedom(tt)
		if err != nil {
			t.Fatal(err)
		}
		got, err := dtr.EvaluateDegreesOfFreedom(tt)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("decoded state %v at t=%g, want %v", got, tt, want)
		}
	}

	// The decoded ephemeris can be prolonged further.
	decoded.Prolong(3)
	if decoded.TMax() < 3 {
		t.Errorf("TMax = %g after prolonging the decoded ephemeris", decoded.TMax())
	}
}

func TestFrameMessageRoundTrip(t *testing.T) {
	e, primary, secondary := circularPair(t, 0.01)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := f.WriteToMessage(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadBarycentricRotatingDynamicFrameFromMessage(&buf, e)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.primary != primary || decoded.secondary != secondary {
		t.Error("decoded frame does not reference the ephemeris bodies")
	}
}

func TestFrameMessageUnknownBody(t *testing.T) {
	e, primary, secondary := circularPair(t, 0.01)
	f, err := NewBarycentricRotatingDynamicFrame(e, primary, secondary)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := f.WriteToMessage(&buf); err != nil {
		t.Fatal(err)
	}

	other := &MassiveBody{Name: "other", GravitationalParameter: 1}
	e2, err := NewEphemeris([]*MassiveBody{other},
		make([]DegreesOfFreedom, 1), 0, 1, &Leapfrog{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ReadBarycentricRotatingDynamicFrameFromMessage(&buf, e2); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("decoding against a foreign ephemeris: %v", err)
	}
}

func encodeEphemerisMessage(t *testing.T, msg ephemerisMessage) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if err := gob.NewEncoder(zw).Encode(msg); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadEphemerisBadTimeline(t *testing.T) {
	// A nonpositive step or an inverted timeline would make Prolong loop
	// forever; such messages are rejected.
	base := ephemerisMessage{
		Bodies:       []MassiveBody{{Name: "b", GravitationalParameter: 1}},
		Trajectories: make([]trajectoryMessage, 1),
		States:       make([]DegreesOfFreedom, 1),
		InitialTime:  0,
		Time:         1,
		Step:         0.5,
	}
	if _, err := ReadEphemerisFromMessage(encodeEphemerisMessage(t, base), &Leapfrog{}); err != nil {
		t.Fatalf("well-formed message rejected: %v", err)
	}

	bad := base
	bad.Step = 0
	if _, err := ReadEphemerisFromMessage(encodeEphemerisMessage(t, bad), &Leapfrog{}); !errors.Is(err, ErrBadMessage) {
		t.Errorf("zero step: %v", err)
	}
	bad = base
	bad.Step = -0.5
	if _, err := ReadEphemerisFromMessage(encodeEphemerisMessage(t, bad), &Leapfrog{}); !errors.Is(err, ErrBadMessage) {
		t.Errorf("negative step: %v", err)
	}
	bad = base
	bad.Time = -1
	if _, err := ReadEphemerisFromMessage(encodeEphemerisMessage(t, bad), &Leapfrog{}); !errors.Is(err, ErrBadMessage) {
		t.Errorf("timeline ending before it starts: %v", err)
	}
}

func TestReadEphemerisGarbage(t *testing.T) {
	if _, err := ReadEphemerisFromMessage(bytes.NewReader([]byte("not a message")), &Leapfrog{}); !errors.Is(err, ErrBadMessage) {
		t.Errorf("garbage input: %v", err)
	}
}
