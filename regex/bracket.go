package regex

import (
	"slices"
)

type charRange struct {
	from byte
	to   byte
}

func (r charRange) inRange(c byte) bool {
	return c >= r.from && c <= r.to
}

// bracketSet builds the members of a group body, the bytes strictly between '['
// and ']' with any leading '^' already removed. Every byte stands for itself,
// so '-' is a member rather than a range operator.
func bracketSet(body string) []charRange {
	ranges := make([]charRange, 0, len(body))
	for i := 0; i < len(body); i++ {
		ranges = append(ranges, charRange{from: body[i], to: body[i]})
	}
	return ranges
}

// matchBracket reports whether c is a member of the group body. An empty body
// has no members.
func matchBracket(c byte, body string) bool {
	return slices.ContainsFunc(bracketSet(body), func(r charRange) bool { return r.inRange(c) })
}

// containsBracket reports whether any byte of in is a member of the group body.
func containsBracket(in string, body string) bool {
	set := bracketSet(body)
	for i := 0; i < len(in); i++ {
		if slices.ContainsFunc(set, func(r charRange) bool { return r.inRange(in[i]) }) {
			return true
		}
	}
	return false
}
