package physics

import (
	"compress/zlib"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

// Serialization uses zlib-compressed gobs. Trajectories compress well since
// gob elides zero fields and the samples share exponents.

// ErrBadMessage is returned when a serialized message cannot be decoded or
// refers to bodies that do not exist.
var ErrBadMessage = errors.New("bad message")

type trajectoryMessage struct {
	Times  []float64
	States []DegreesOfFreedom
}

type ephemerisMessage struct {
	Bodies       []MassiveBody
	Trajectories []trajectoryMessage
	InitialTime  float64
	Time         float64
	Step         float64
	States       []DegreesOfFreedom
}

// WriteToMessage serializes the ephemeris, including the full recorded
// timeline, to w.
func (e *Ephemeris) WriteToMessage(w io.Writer) error {
	msg := ephemerisMessage{
		Bodies:       make([]MassiveBody, len(e.bodies)),
		Trajectories: make([]trajectoryMessage, len(e.bodies)),
		InitialTime:  e.initialTime,
		Time:         e.t,
		Step:         e.step,
		States:       e.states,
	}
	for i, b := range e.bodies {
		msg.Bodies[i] = *b
		tr := e.trajectories[b]
		msg.Trajectories[i] = trajectoryMessage{Times: tr.times, States: tr.states}
	}

	zw := zlib.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(msg); err != nil {
		zw.Close()
		return fmt.Errorf("encoding ephemeris: %w", err)
	}
	return zw.Close()
}

// ReadEphemerisFromMessage rebuilds an ephemeris serialized by
// WriteToMessage. The integrator is not serialized and must be supplied.
func ReadEphemerisFromMessage(r io.Reader, integrator SymplecticIntegrator) (*Ephemeris, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	defer zr.Close()

	var msg ephemerisMessage
	if err := gob.NewDecoder(zr).Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if len(msg.Bodies) != len(msg.Trajectories) || len(msg.Bodies) != len(msg.States) {
		return nil, fmt.Errorf("%w: inconsistent lengths", ErrBadMessage)
	}
	if !(msg.Step > 0) || msg.Time < msg.InitialTime {
		return nil, fmt.Errorf("%w: step %g, timeline [%g, %g]",
			ErrBadMessage, msg.Step, msg.InitialTime, msg.Time)
	}

	e := &Ephemeris{
		bodies:       make([]*MassiveBody, len(msg.Bodies)),
		byName:       make(map[string]*MassiveBody, len(msg.Bodies)),
		trajectories: make(map[*MassiveBody]*Trajectory, len(msg.Bodies)),
		states:       msg.States,
		t:            msg.Time,
		initialTime:  msg.InitialTime,
		step:         msg.Step,
		integrator:   integrator,
	}
	for i := range msg.Bodies {
		b := &msg.Bodies[i]
		if _, dup := e.byName[b.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate body %q", ErrBadMessage, b.Name)
		}
		e.bodies[i] = b
		e.byName[b.Name] = b
		tm := msg.Trajectories[i]
		if len(tm.Times) != len(tm.States) {
			return nil, fmt.Errorf("%w: inconsistent trajectory for %q", ErrBadMessage, b.Name)
		}
		e.trajectories[b] = &Trajectory{times: tm.Times, states: tm.States}
	}
	return e, nil
}

type frameMessage struct {
	Primary   string
	Secondary string
}

// WriteToMessage serializes the frame to w. Only the body names are
// written; the ephemeris is serialized separately.
func (f *BarycentricRotatingDynamicFrame) WriteToMessage(w io.Writer) error {
	zw := zlib.NewWriter(w)
	err := gob.NewEncoder(zw).Encode(frameMessage{
		Primary:   f.primary.Name,
		Secondary: f.secondary.Name,
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("encoding frame: %w", err)
	}
	return zw.Close()
}

// ReadBarycentricRotatingDynamicFrameFromMessage rebuilds a frame
// serialized by WriteToMessage, resolving its bodies against e.
func ReadBarycentricRotatingDynamicFrameFromMessage(r io.Reader,
	e *Ephemeris) (*BarycentricRotatingDynamicFrame, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	defer zr.Close()

	var msg frameMessage
	if err := gob.NewDecoder(zr).Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	primary, err := e.Body(msg.Primary)
	if err != nil {
		return nil, err
	}
	secondary, err := e.Body(msg.Secondary)
	if err != nil {
		return nil, err
	}
	return NewBarycentricRotatingDynamicFrame(e, primary, secondary)
}
