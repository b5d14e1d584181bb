package world

import (
	"fmt"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"

	"github.com/gravitas-games/pipeworks/pkg/grid3"
	"github.com/gravitas-games/pipeworks/pkg/models"
)

// DefaultSpawnAttempts caps how many random cells a fresh start samples
// before giving up with ErrGridSaturated.
const DefaultSpawnAttempts = 100

// Params configures a World at construction time. All fields are fixed for
// the lifetime of the world.
type Params struct {
	// Bounds is the exclusive upper corner of the growth volume.
	Bounds grid3.Bounds

	// TurnProbability is the per-step chance that a run bends onto a
	// perpendicular direction instead of continuing straight. In [0, 1].
	TurnProbability float32

	// StopProbability is the per-step chance that the current run is
	// abandoned and a fresh one starts at a random free cell. In [0, 1].
	StopProbability float32

	// Palette supplies run colors. Empty means DefaultPalette.
	Palette Palette

	// SpawnAttempts bounds fresh-start resampling. Zero means
	// DefaultSpawnAttempts.
	SpawnAttempts int
}

// World owns the growth state: the occupancy grid, the last placed
// segment, and the two render-facing instance streams. It is not safe for
// concurrent use; a single goroutine must own it for the duration of a
// growth run.
type World struct {
	grid          *Grid
	turnChance    float32
	stopChance    float32
	palette       Palette
	spawnAttempts int

	last    *Segment
	streams [models.NumPipeTypes][]models.Instance
}

// New creates an empty world. Params are validated here even when they
// come from a validated config, so library callers get the same guarantees.
func New(p Params) (*World, error) {
	if p.Bounds.X == 0 || p.Bounds.Y == 0 || p.Bounds.Z == 0 {
		return nil, fmt.Errorf("world bounds %v: every extent must be at least 1", p.Bounds)
	}
	if p.TurnProbability < 0 || p.TurnProbability > 1 {
		return nil, fmt.Errorf("turn probability %v outside [0, 1]", p.TurnProbability)
	}
	if p.StopProbability < 0 || p.StopProbability > 1 {
		return nil, fmt.Errorf("stop probability %v outside [0, 1]", p.StopProbability)
	}
	if p.Palette == nil {
		p.Palette = DefaultPalette()
	}
	if p.SpawnAttempts <= 0 {
		p.SpawnAttempts = DefaultSpawnAttempts
	}
	return &World{
		grid:          NewGrid(p.Bounds),
		turnChance:    p.TurnProbability,
		stopChance:    p.StopProbability,
		palette:       p.Palette,
		spawnAttempts: p.SpawnAttempts,
	}, nil
}

// Grow performs one growth step: it places exactly one segment, appends
// exactly one instance to the matching stream, and reports which branch of
// the decision tree it took. All randomness comes from rng.
//
// Draw consumption order is part of the contract, so seeded tests stay
// stable: the stop draw (Float32, skipped when no segment exists yet),
// then on a fresh start one Intn per axis per spawn attempt followed by
// direction Intn(6) and color Intn(len palette); on a continuation the
// turn draw (Float32) followed by the perpendicular pick (Intn(4)) when
// it turns.
//
// The only error is ErrGridSaturated, returned when a fresh start cannot
// find a free cell; the world is unchanged in that case.
func (w *World) Grow(rng randx.Rand) (Step, error) {
	if w.last == nil || rng.Float32() < w.stopChance {
		return w.freshStart(rng, StepFreshStart)
	}

	prev := *w.last
	next := prev.Pos.Step(prev.Direction)
	if !w.grid.Valid(next) {
		// Blocked continuation forfeits the run: new cell, new color.
		return w.freshStart(rng, StepBlockedRestart)
	}

	if rng.Float32() < w.turnChance {
		seg := Segment{
			Type:      models.PipeElbow,
			Pos:       next,
			Direction: prev.Direction.RandomPerpendicular(rng),
			Color:     prev.Color,
		}
		return w.place(seg, prev.Direction, StepTurn)
	}

	seg := Segment{
		Type:      models.PipeStraight,
		Pos:       next,
		Direction: prev.Direction,
		Color:     prev.Color,
	}
	return w.place(seg, prev.Direction, StepContinue)
}

// freshStart places the head of a new run at a random free cell. The
// volume check catches exact saturation before any draw; the attempt cap
// keeps a nearly full grid from stalling the caller.
func (w *World) freshStart(rng randx.Rand, kind StepKind) (Step, error) {
	if w.grid.Full() {
		return Step{}, fmt.Errorf("fresh start in %v: %w", w.grid.Bounds(), ErrGridSaturated)
	}

	pos, ok := grid3.Pos{}, false
	for i := 0; i < w.spawnAttempts; i++ {
		pos = w.grid.Bounds().RandomPos(rng)
		if !w.grid.Occupied(pos) {
			ok = true
			break
		}
	}
	if !ok {
		return Step{}, fmt.Errorf("fresh start: no free cell after %d attempts: %w", w.spawnAttempts, ErrGridSaturated)
	}

	seg := Segment{
		Type:      models.PipeStraight,
		Pos:       pos,
		Direction: grid3.RandomDirection(rng),
		Color:     w.palette.Random(rng),
	}
	return w.place(seg, seg.Direction, kind)
}

// AddDebugPipe places a scripted segment, bypassing the random decision
// tree but running the same orientation, occupancy, and stream
// bookkeeping. It does not check bounds or collisions; it exists for
// fixtures that lay out exact shapes. An elbow needs a previous segment
// whose direction is perpendicular to dir, otherwise
// ErrInvalidDirectionPair.
func (w *World) AddDebugPipe(t models.PipeType, pos grid3.Pos, dir grid3.Direction, color math32.Vector3) (Step, error) {
	if !t.Valid() {
		return Step{}, fmt.Errorf("debug pipe: unknown pipe type %d", t)
	}
	incoming := dir
	if t == models.PipeElbow {
		if w.last == nil {
			return Step{}, fmt.Errorf("debug elbow at %v with no previous segment: %w", pos, ErrInvalidDirectionPair)
		}
		incoming = w.last.Direction
	}
	seg := Segment{Type: t, Pos: pos, Direction: dir, Color: color}
	return w.place(seg, incoming, StepDebug)
}

// place resolves the segment's rotation, appends the instance, marks the
// cell, and records the segment as the new run tail. Nothing is mutated
// until the rotation resolves.
func (w *World) place(seg Segment, incoming grid3.Direction, kind StepKind) (Step, error) {
	var rot math32.Quat
	switch seg.Type {
	case models.PipeStraight:
		rot = StraightRotation(seg.Direction)
	case models.PipeElbow:
		var err error
		rot, err = ElbowRotation(incoming, seg.Direction)
		if err != nil {
			return Step{}, err
		}
	}

	inst := models.NewInstance(seg.Pos.Vec3(), rot, seg.Color)
	w.streams[seg.Type] = append(w.streams[seg.Type], inst)
	w.grid.Mark(seg.Pos)
	last := seg
	w.last = &last

	return Step{Kind: kind, Segment: seg, Instance: inst}, nil
}

// Bounds returns the growth volume.
func (w *World) Bounds() grid3.Bounds { return w.grid.Bounds() }

// Last returns the most recently placed segment, or false before any
// placement.
func (w *World) Last() (Segment, bool) {
	if w.last == nil {
		return Segment{}, false
	}
	return *w.last, true
}

// Occupied reports whether the cell already holds a segment.
func (w *World) Occupied(p grid3.Pos) bool { return w.grid.Occupied(p) }

// OccupiedCount returns the number of occupied cells.
func (w *World) OccupiedCount() int { return w.grid.Count() }

// Saturated reports whether every in-bounds cell is occupied. Once true,
// every further Grow returns ErrGridSaturated.
func (w *World) Saturated() bool { return w.grid.Full() }

// Instances returns the stream for one pipe type in generation order. The
// returned slice is the world's own backing store; callers must not
// mutate it.
func (w *World) Instances(t models.PipeType) []models.Instance {
	if !t.Valid() {
		return nil
	}
	return w.streams[t]
}

// StraightInstances returns the straight-segment stream in generation order.
func (w *World) StraightInstances() []models.Instance { return w.streams[models.PipeStraight] }

// ElbowInstances returns the elbow-segment stream in generation order.
func (w *World) ElbowInstances() []models.Instance { return w.streams[models.PipeElbow] }

// SegmentCount returns the total number of placed segments across both
// streams.
func (w *World) SegmentCount() int {
	return len(w.streams[models.PipeStraight]) + len(w.streams[models.PipeElbow])
}
