package regex

import (
	"strings"
)

type tokenKind int

const (
	literalToken tokenKind = iota
	digitToken
	wordToken
	posGroupToken
	negGroupToken
)

// token is one pattern position that matches exactly one input byte.
// pos and end delimit its source text in the scanned pattern.
type token struct {
	kind tokenKind
	char byte
	body string
	pos  int
	end  int
}

func (t token) matches(c byte) bool {
	switch t.kind {
	case literalToken:
		return c == t.char
	case digitToken:
		return isDigit(c)
	case wordToken:
		return isAlnum(c)
	case posGroupToken:
		return matchBracket(c, t.body)
	case negGroupToken:
		return !matchBracket(c, t.body)
	default:
		panic("unexpected token kind")
	}
}

// nextToken reads the token starting at pattern[i].
// '+' is read as a literal, only the quantifier handler gives it meaning.
func nextToken(pattern string, i int) (token, error) {
	switch pattern[i] {
	case '\\':
		if i+1 >= len(pattern) {
			return token{}, newPatternError(ErrMalformedPattern, pattern, i, "incomplete escape sequence")
		}
		switch pattern[i+1] {
		case 'd':
			return token{kind: digitToken, pos: i, end: i + 2}, nil
		case 'w':
			return token{kind: wordToken, pos: i, end: i + 2}, nil
		}
		return token{}, newEscapeError(pattern, i)
	case '[':
		closing := strings.IndexByte(pattern[i+1:], ']')
		if closing == -1 {
			return token{}, newPatternError(ErrMalformedPattern, pattern, i, "did not find closing ']'")
		}
		end := i + 1 + closing + 1
		body := pattern[i+1 : end-1]
		if strings.HasPrefix(body, "^") {
			return token{kind: negGroupToken, body: body[1:], pos: i, end: end}, nil
		}
		return token{kind: posGroupToken, body: body, pos: i, end: end}, nil
	}
	return token{kind: literalToken, char: pattern[i], pos: i, end: i + 1}, nil
}

// scan splits the whole pattern into tokens, failing on the first malformed one.
func scan(pattern string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(pattern); {
		tok, err := nextToken(pattern, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		i = tok.end
	}
	return tokens, nil
}

// matchToken classifies the token at the start of pattern and evaluates it
// against c. It returns how many pattern bytes the token spans.
func matchToken(c byte, pattern string) (bool, int, error) {
	tok, err := nextToken(pattern, 0)
	if err != nil {
		return false, 0, err
	}
	return tok.matches(c), tok.end, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
