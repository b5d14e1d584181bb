package world

import (
	"cogentcore.org/core/math32"

	"github.com/gravitas-games/pipeworks/pkg/grid3"
	"github.com/gravitas-games/pipeworks/pkg/models"
)

// Segment is one placed pipe piece in grid terms: which mesh it uses, the
// cell it occupies, the direction the run leaves it in, and the run color.
// The render-facing counterpart is models.Instance.
type Segment struct {
	Type      models.PipeType
	Pos       grid3.Pos
	Direction grid3.Direction
	Color     math32.Vector3
}

// StepKind names the branch of the growth decision tree a step took
type StepKind uint8

const (
	// StepFreshStart placed the head of a new run at a random free cell
	StepFreshStart StepKind = iota
	// StepContinue extended the current run along its direction
	StepContinue
	// StepTurn bent the current run onto a perpendicular direction
	StepTurn
	// StepBlockedRestart abandoned a blocked run and started a new one
	StepBlockedRestart
	// StepDebug placed a scripted segment outside the random decision tree
	StepDebug
)

// String returns a human-readable step kind name
func (k StepKind) String() string {
	switch k {
	case StepFreshStart:
		return "fresh_start"
	case StepContinue:
		return "continue"
	case StepTurn:
		return "turn"
	case StepBlockedRestart:
		return "blocked_restart"
	case StepDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Step reports one successful growth step: which branch was taken, the
// segment in grid terms, and the instance appended to the output stream.
type Step struct {
	Kind     StepKind
	Segment  Segment
	Instance models.Instance
}
