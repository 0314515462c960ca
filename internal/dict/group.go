package dict

// Group queries several dictionaries at equal priority and keeps the longest
// match. Members are consulted in declared order, and only a strictly longer
// match displaces an earlier one, so on equal lengths the earliest member
// wins. Members may themselves be groups. A Group is immutable and safe for
// concurrent use.
type Group struct {
	members   []Matcher
	maxKeyLen int
}

// NewGroup builds a Group over members. The slice is copied; order is the
// group's priority order.
func NewGroup(members []Matcher) *Group {
	g := &Group{members: make([]Matcher, len(members))}
	copy(g.members, members)
	for _, m := range g.members {
		if m.MaxKeyLen() > g.maxKeyLen {
			g.maxKeyLen = m.MaxKeyLen()
		}
	}
	return g
}

// Match returns the longest match across all members.
func (g *Group) Match(text string) (int, []string, bool) {
	var (
		bestN int
		bestV []string
	)
	for _, m := range g.members {
		if n, v, ok := m.Match(text); ok && n > bestN {
			bestN, bestV = n, v
		}
	}
	return bestN, bestV, bestN > 0
}

// MaxKeyLen returns the rune length of the longest key in any member.
func (g *Group) MaxKeyLen() int { return g.maxKeyLen }

// Size returns the number of members.
func (g *Group) Size() int { return len(g.members) }
