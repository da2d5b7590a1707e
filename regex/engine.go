package regex

// matchPrefix matches pattern against in with the first token aligned to in[0].
// Input is consumed strictly left to right, one byte per token, and nothing is
// retried on a mismatch. On success it returns the number of input bytes
// consumed; bytes left over after the pattern is used up are fine.
func matchPrefix(in string, pattern string) (int, bool, error) {
	i, j := 0, 0
	for i < len(pattern) {
		if j >= len(in) {
			return j, false, nil
		}

		matched, consumed, err := matchToken(in[j], pattern[i:])
		if err != nil {
			return j, false, err
		}
		if !matched {
			return j, false, nil
		}
		i += consumed
		j++
	}
	return j, true, nil
}

func matchFromStart(in string, pattern string) (bool, error) {
	_, matched, err := matchPrefix(in, pattern)
	return matched, err
}
