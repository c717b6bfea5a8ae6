package life

import (
	"fmt"
	"strings"
)

// Rule is a life-like birth/survival rule indexed by live-neighbour count.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the standard B3/S23 rule.
var Conway = MustParseRule("B3/S23")

// ParseRule parses rules in B/S notation such as "B3/S23" or "B36/S23".
// Either part may come first and may be empty ("B2/S" is Seeds).
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	seen := map[byte]bool{}
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("rule %q: empty part", s)
		}
		kind := part[0]
		if kind != 'B' && kind != 'S' {
			return r, fmt.Errorf("rule %q: part %q must start with B or S", s, part)
		}
		if seen[kind] {
			return r, fmt.Errorf("rule %q: duplicate %c part", s, kind)
		}
		seen[kind] = true
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("rule %q: neighbour count %q out of range 0-8", s, ch)
			}
			n := int(ch - '0')
			if kind == 'B' {
				r.Birth[n] = true
			} else {
				r.Survive[n] = true
			}
		}
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on malformed input.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Next returns the next state of a cell given its state and neighbour count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String formats the rule back into B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
