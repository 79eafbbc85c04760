package automaton

// State is a named vertex of an automaton.
type State struct {
	Name     string
	IsStart  bool
	IsAccept bool
}

func NewState(name string, isStart, isAccept bool) State {
	return State{Name: name, IsStart: isStart, IsAccept: isAccept}
}

// MakeAccept Mark this state as an accept state.
func (s *State) MakeAccept() {
	s.IsAccept = true
}

// Merge Coalesce other into this state: names are joined with '+', flags are OR-ed.
func (s *State) Merge(other State) {
	s.Name += "+" + other.Name
	s.IsStart = s.IsStart || other.IsStart
	s.IsAccept = s.IsAccept || other.IsAccept
}
