package regex

import (
	"errors"
	"slices"
	"strings"
)

type shapeKind int

const (
	literalShape shapeKind = iota
	escapeClassShape
	bracketGroupShape
	startAnchorShape
	endAnchorShape
	quantifiedShape
	genericShape
)

// shape is the single strategy chosen for a pattern.
type shape struct {
	kind      shapeKind
	body      string
	class     token     // escapeClassShape
	negate    bool      // bracketGroupShape
	strictEnd bool      // startAnchorShape ending in '$'
	width     int       // endAnchorShape: input bytes body consumes
	quant     oneOrMore // quantifiedShape
}

// classify picks the strategy for pattern. The checks run in a fixed order and
// the first that applies wins. Whatever the strategy will interpret is
// scanned here, so a malformed pattern is rejected even when line is empty.
func classify(pattern string) (shape, error) {
	switch {
	case len(pattern) == 0:
		return shape{}, newPatternError(ErrUnsupportedPattern, pattern, 0, "empty pattern")
	case len(pattern) == 1:
		if pattern[0] == '\\' {
			return shape{}, newPatternError(ErrMalformedPattern, pattern, 0, "incomplete escape sequence")
		}
		return shape{kind: literalShape, body: pattern}, nil
	case len(pattern) == 2 && pattern[0] == '\\':
		tok, err := nextToken(pattern, 0)
		if err != nil {
			return shape{}, err
		}
		return shape{kind: escapeClassShape, class: tok}, nil
	case isBracketGroup(pattern):
		body := pattern[1 : len(pattern)-1]
		if strings.HasPrefix(body, "^") {
			return shape{kind: bracketGroupShape, body: body[1:], negate: true}, nil
		}
		return shape{kind: bracketGroupShape, body: body}, nil
	case pattern[0] == '^':
		body, strictEnd := strings.CutSuffix(pattern[1:], "$")
		if _, err := scan(body); err != nil {
			return shape{}, rebase(err, pattern, 1)
		}
		return shape{kind: startAnchorShape, body: body, strictEnd: strictEnd}, nil
	case pattern[len(pattern)-1] == '$':
		body := pattern[:len(pattern)-1]
		tokens, err := scan(body)
		if err != nil {
			return shape{}, rebase(err, pattern, 0)
		}
		return shape{kind: endAnchorShape, body: body, width: len(tokens)}, nil
	}

	tokens, err := scan(pattern)
	if err != nil {
		return shape{}, err
	}
	if slices.ContainsFunc(tokens, isPlus) {
		q, err := splitOneOrMore(pattern)
		if err != nil {
			return shape{}, err
		}
		return shape{kind: quantifiedShape, body: pattern, quant: q}, nil
	}
	return shape{kind: genericShape, body: pattern}, nil
}

// Match reports whether pattern matches somewhere in line, or at the position
// its anchor demands. Supported syntax is literal bytes, \d, \w, [...], [^...],
// a leading '^', a trailing '$' and one-or-more '+' after a single token.
//
// A pattern that cannot be interpreted is reported as an error, never as a
// non-match. The returned error wraps ErrMalformedPattern, ErrUnsupportedEscape
// or ErrUnsupportedPattern.
func Match(line string, pattern string) (bool, error) {
	s, err := classify(pattern)
	if err != nil {
		return false, err
	}

	switch s.kind {
	case literalShape:
		return strings.Contains(line, s.body), nil
	case escapeClassShape:
		return containsToken(line, s.class), nil
	case bracketGroupShape:
		// [^...] is the complement of the whole positive result, not a per byte test
		return containsBracket(line, s.body) != s.negate, nil
	case startAnchorShape:
		n, matched, err := matchPrefix(line, s.body)
		if err != nil || !matched {
			return false, err
		}
		return !s.strictEnd || n == len(line), nil
	case endAnchorShape:
		if s.width > len(line) {
			return false, nil
		}
		return matchFromStart(line[len(line)-s.width:], s.body)
	case quantifiedShape:
		return s.quant.match(line)
	case genericShape:
		for i := 0; i < len(line); i++ {
			matched, err := matchFromStart(line[i:], s.body)
			if err != nil || matched {
				return matched, err
			}
		}
		return false, nil
	default:
		panic("unexpected pattern shape")
	}
}

// isBracketGroup reports whether the whole pattern is a single [...] group.
func isBracketGroup(pattern string) bool {
	return pattern[0] == '[' && pattern[len(pattern)-1] == ']' &&
		!strings.Contains(pattern[1:len(pattern)-1], "]")
}

func containsToken(in string, tok token) bool {
	for i := 0; i < len(in); i++ {
		if tok.matches(in[i]) {
			return true
		}
	}
	return false
}

// rebase makes a PatternError raised on a fragment of pattern point into the
// full pattern.
func rebase(err error, pattern string, offset int) error {
	var pe *PatternError
	if errors.As(err, &pe) {
		pe.Pattern = pattern
		pe.Pos += offset
	}
	return err
}
