package facet

// Selection is the chosen value of one facet, or no constraint at all.
// The zero value is unconstrained, so an empty string is never mistaken for "any".
type Selection struct {
	value  string
	active bool
}

// Any returns the unconstrained selection.
func Any() Selection {
	return Selection{}
}

// Is returns a selection constrained to value. Is("") constrains to the empty string.
func Is(value string) Selection {
	return Selection{value: value, active: true}
}

// Active reports whether the selection constrains anything.
func (s Selection) Active() bool {
	return s.active
}

// Value returns the selected value and whether the selection is active.
func (s Selection) Value() (string, bool) {
	return s.value, s.active
}

func (s Selection) String() string {
	if !s.active {
		return "<any>"
	}
	return s.value
}

// State maps facet names to their selections. Names without an entry are unconstrained.
type State map[string]Selection

// Get returns the selection for name, or Any when none is set.
func (s State) Get(name string) Selection {
	if s == nil {
		return Any()
	}
	return s[name]
}

// With returns a copy of the state with name set to sel.
func (s State) With(name string, sel Selection) State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[name] = sel
	return next
}
