package options

// Registry holds every option group known to the program, in menu order.
// Groups live for the whole process; the active set only borrows them.
type Registry struct {
	groups []*Group
	byName map[string]*Group
}

// NewRegistry creates a registry from the given groups. Group names must be
// unique.
func NewRegistry(groups ...*Group) (*Registry, error) {
	if len(groups) == 0 {
		return nil, NewValidationError("", "at least one option group is required")
	}

	r := &Registry{
		groups: make([]*Group, 0, len(groups)),
		byName: make(map[string]*Group, len(groups)),
	}
	for _, g := range groups {
		if g == nil {
			return nil, NewValidationError("", "nil option group")
		}
		if r.Get(g.name) != nil {
			return nil, NewValidationError(g.name, "duplicate group name")
		}
		r.groups = append(r.groups, g)
		r.byName[g.name] = g
	}
	return r, nil
}

// Groups returns the groups in registration order
func (r *Registry) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Get retrieves a group by name. Returns nil if it doesn't exist.
func (r *Registry) Get(name string) *Group {
	return r.byName[name]
}

// Clock returns the default clock group: hours 12 (0-23), minutes and
// seconds 0 (0-59).
func Clock() *Group {
	g, _ := NewGroup("clock", "Set Clock", "Time: ", ':',
		MustItem("hours", 12, 0, 23),
		MustItem("minutes", 0, 0, 59),
		MustItem("seconds", 0, 0, 59),
	)
	return g
}

// Date returns the default date group: day 1 (1-31), month 1 (1-12),
// two-digit year 25 (0-99).
func Date() *Group {
	g, _ := NewGroup("date", "Set Date", "Date: ", '/',
		MustItem("day", 1, 1, 31),
		MustItem("month", 1, 1, 12),
		MustItem("year", 25, 0, 99),
	)
	return g
}

// DefaultRegistry returns a fresh registry holding the clock and date groups.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(Clock(), Date())
	return r
}
