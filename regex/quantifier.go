package regex

// oneOrMore is a pattern split at its first '+': the tokens before the
// repeated one, the repeated token itself, and the rest of the pattern
// after the '+'.
type oneOrMore struct {
	prefix []token
	repeat token
	suffix string
}

// splitOneOrMore splits pattern at its first '+'. Any later '+' stays
// in the suffix, where it is an ordinary literal.
func splitOneOrMore(pattern string) (oneOrMore, error) {
	tokens, err := scan(pattern)
	if err != nil {
		return oneOrMore{}, err
	}

	for k, tok := range tokens {
		if !isPlus(tok) {
			continue
		}
		if k == 0 {
			return oneOrMore{}, newPatternError(ErrMalformedPattern, pattern, tok.pos, "'+' has nothing to repeat")
		}
		return oneOrMore{
			prefix: tokens[:k-1],
			repeat: tokens[k-1],
			suffix: pattern[tok.end:],
		}, nil
	}
	return oneOrMore{}, newPatternError(ErrUnsupportedPattern, pattern, 0, "no '+' quantifier")
}

// match tries every input offset. At each one the prefix must match exactly
// and be followed by at least one repetition. The run is always taken whole:
// if the suffix then fails, shorter runs are not retried, so "a+a" never
// matches "aaa".
func (q oneOrMore) match(in string) (bool, error) {
offsets:
	for i := 0; i < len(in); i++ {
		j := i
		for _, tok := range q.prefix {
			if j >= len(in) || !tok.matches(in[j]) {
				continue offsets
			}
			j++
		}

		runStart := j
		for j < len(in) && q.repeat.matches(in[j]) {
			j++
		}
		if j == runStart {
			continue
		}

		matched, err := matchFromStart(in[j:], q.suffix)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func isPlus(tok token) bool {
	return tok.kind == literalToken && tok.char == '+'
}
