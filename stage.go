package automaton

import "fmt"

// Stage is the position of an automaton in the transformation pipeline. Stages
// only move forward.
type Stage int

const (
	StageRaw          = Stage(iota) // As constructed
	StageSingleLetter               // Every transition carries exactly one symbol
	StageDeterministic              // At most one transition per symbol leaves each state
	StageComplete                   // Exactly one transition per symbol leaves each state
	StageMinimal                    // No two states are equivalent
)

func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageSingleLetter:
		return "single-letter"
	case StageDeterministic:
		return "deterministic"
	case StageComplete:
		return "complete"
	case StageMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// ParseStage Returns the stage whose String form is name.
func ParseStage(name string) (Stage, error) {
	for s := StageRaw; s <= StageMinimal; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return StageRaw, fmt.Errorf("unknown stage %q", name)
}

// Advance Runs the pipeline until the automaton reaches stage.
func (a *Automaton) Advance(stage Stage) error {
	switch stage {
	case StageRaw:
		return nil
	case StageSingleLetter:
		a.MakeOneLetter()
		return nil
	case StageDeterministic:
		return a.Determinize()
	case StageComplete:
		return a.Complete()
	case StageMinimal:
		return a.Minimize()
	default:
		return fmt.Errorf("unknown stage %d", stage)
	}
}
