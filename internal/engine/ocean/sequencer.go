// Package ocean provides the animated ocean surface: the frame sequencer that
// cross-fades pre-baked height/normal frames and the submitter that draws the
// tessellated patch grid.
package ocean

import (
	"errors"
	"fmt"
	gomath "math"
)

// Default animation parameters.
const (
	DefaultFrameCount = 13
	DefaultBlendRate  = 0.4 // Fraction of a frame pair blended per second
	DefaultOffsetRate = 0.2 // Ripple phase units per second

	// DefaultOffsetWrap keeps the ripple phase inside the int32 range the
	// shader was authored against.
	DefaultOffsetWrap = gomath.MaxInt32 - 2
)

var (
	// ErrTooFewFrames is returned when a sequence has fewer than two frames.
	ErrTooFewFrames = errors.New("ocean: frame sequence needs at least 2 frames")

	// ErrInvalidRate is returned for negative, NaN or infinite rates.
	ErrInvalidRate = errors.New("ocean: rate must be finite and non-negative")
)

// Snapshot is the externally visible sequencer state after an Advance.
type Snapshot struct {
	ActiveIndex int
	NextIndex   int
	Weight      float32 // Always in [0, 1)
	TimeOffset  float32
}

// SequencerConfig holds the constants a Sequencer is built from.
type SequencerConfig struct {
	FrameCount int
	BlendRate  float64
	OffsetRate float64
	OffsetWrap float64 // Zero selects DefaultOffsetWrap
}

// DefaultSequencerConfig returns the reference deployment settings.
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		FrameCount: DefaultFrameCount,
		BlendRate:  DefaultBlendRate,
		OffsetRate: DefaultOffsetRate,
		OffsetWrap: DefaultOffsetWrap,
	}
}

// Sequencer owns the active frame pair, the blend weight between them and the
// ripple time accumulator.
type Sequencer struct {
	frameCount int
	blendRate  float64
	offsetRate float64
	offsetWrap float64

	active int
	next   int
	weight float64
	offset float64
}

// NewSequencer creates a sequencer positioned at {0, 1} with zero weight.
func NewSequencer(cfg SequencerConfig) (*Sequencer, error) {
	if cfg.FrameCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewFrames, cfg.FrameCount)
	}
	if !validRate(cfg.BlendRate) {
		return nil, fmt.Errorf("%w: blend rate %v", ErrInvalidRate, cfg.BlendRate)
	}
	if !validRate(cfg.OffsetRate) {
		return nil, fmt.Errorf("%w: offset rate %v", ErrInvalidRate, cfg.OffsetRate)
	}
	wrap := cfg.OffsetWrap
	if wrap == 0 {
		wrap = DefaultOffsetWrap
	}
	if !validRate(wrap) {
		return nil, fmt.Errorf("%w: offset wrap %v", ErrInvalidRate, wrap)
	}

	s := &Sequencer{
		frameCount: cfg.FrameCount,
		blendRate:  cfg.BlendRate,
		offsetRate: cfg.OffsetRate,
		offsetWrap: wrap,
	}
	s.Reset()
	return s, nil
}

func validRate(v float64) bool {
	return v >= 0 && !gomath.IsInf(v, 0) && !gomath.IsNaN(v)
}

// FrameCount returns the length of the frame sequence.
func (s *Sequencer) FrameCount() int {
	return s.frameCount
}

// Reset returns the sequencer to its start state.
func (s *Sequencer) Reset() {
	s.active = 0
	s.next = 1
	s.weight = 0
	s.offset = 0
}

// Advance moves the animation forward by dt seconds and returns the new state.
// Negative and non-finite deltas are treated as zero.
func (s *Sequencer) Advance(dt float64) Snapshot {
	if !(dt > 0) || gomath.IsInf(dt, 1) {
		dt = 0
	}

	if s.weight < 1 {
		s.weight += dt * s.blendRate
	}
	if s.weight >= 1 {
		// Hard cut: the overshoot past 1 is dropped, not carried into the new pair.
		s.weight = 0
		if s.next == s.frameCount-1 {
			s.active = 0
			s.next = 1
		} else {
			s.active++
			s.next++
		}
	}

	step := dt * s.offsetRate
	if s.offset+step >= s.offsetWrap {
		s.offset = 0
	} else {
		s.offset += step
	}

	if err := s.check(); err != nil {
		panic(err)
	}
	return s.Snapshot()
}

// Snapshot returns the current state without advancing.
func (s *Sequencer) Snapshot() Snapshot {
	w := float32(s.weight)
	if w >= 1 {
		// float64 weights just below 1 can round up when narrowed.
		w = gomath.Nextafter32(1, 0)
	}
	return Snapshot{
		ActiveIndex: s.active,
		NextIndex:   s.next,
		Weight:      w,
		TimeOffset:  float32(s.offset),
	}
}

// InvariantError reports sequencer or submitter state that can only be
// reached through a logic bug.
type InvariantError struct {
	Active int
	Next   int
	Count  int
	Weight float64
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ocean: broken invariant (%s): active=%d next=%d count=%d weight=%v",
		e.Reason, e.Active, e.Next, e.Count, e.Weight)
}

func (s *Sequencer) check() error {
	fail := func(reason string) error {
		return &InvariantError{
			Active: s.active,
			Next:   s.next,
			Count:  s.frameCount,
			Weight: s.weight,
			Reason: reason,
		}
	}
	switch {
	case s.active < 0 || s.active >= s.frameCount:
		return fail("active index out of range")
	case s.next != (s.active+1)%s.frameCount:
		return fail("next index does not follow active")
	case !(s.weight >= 0 && s.weight < 1):
		return fail("weight outside [0, 1)")
	case s.offset < 0:
		return fail("negative time offset")
	}
	return nil
}
