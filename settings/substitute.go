package settings

import (
	"os"
	"strconv"
	"strings"
)

// LookupFunc resolves a variable name against an environment.
// A present-but-empty variable must report found=true.
type LookupFunc func(name string) (value string, found bool)

// Substitute walks the mapping and resolves ${NAME} / ${NAME:-DEFAULT}
// tokens in string leaves against the process environment. It returns a new
// mapping; the input is not mutated. Resolution is a single lexical pass:
// resolved text is never re-scanned for tokens.
func Substitute(m Mapping) (Mapping, error) {
	return substitute(m, os.LookupEnv)
}

func substitute(m Mapping, lookup LookupFunc) (Mapping, error) {
	out, err := substituteValue(m, "", lookup)
	if err != nil {
		return nil, err
	}
	return out.(Mapping), nil
}

func substituteValue(v any, keyPath string, lookup LookupFunc) (any, error) {
	switch t := v.(type) {
	case string:
		return expand(t, keyPath, lookup)
	case Mapping:
		out := make(Mapping, len(t))
		for k, e := range t {
			resolved, err := substituteValue(e, joinPath(keyPath, k), lookup)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			resolved, err := substituteValue(e, joinPath(keyPath, strconv.Itoa(i)), lookup)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		// Non-string leaves pass through unchanged
		return v, nil
	}
}

// expand resolves every token in s and concatenates the results back into
// the literal text positions. Malformed occurrences (bad variable name,
// missing closing brace) stay literal.
func expand(s, keyPath string, lookup LookupFunc) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '$' || i+1 >= len(s) || s[i+1] != '{' {
			b.WriteByte(s[i])
			i++
			continue
		}

		tok, width, ok := parseToken(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}

		value, found := lookup(tok.name)
		switch {
		case found:
			b.WriteString(value)
		case tok.hasDefault:
			b.WriteString(tok.def)
		default:
			return "", ErrMissingVariable.
				WithMsgf("environment variable %s is not defined (at %s)", tok.name, keyPath).
				WithData("variable", tok.name).
				WithData("key_path", keyPath)
		}
		i += width
	}
	return b.String(), nil
}

// token is one parsed ${NAME} / ${NAME:-DEFAULT} occurrence.
type token struct {
	name       string
	def        string
	hasDefault bool
}

// parseToken parses a token at the start of s (s begins with "${").
// Returns the token and its width in bytes. NAME must match
// [A-Za-z_][A-Za-z0-9_]*; DEFAULT is the literal text up to the first '}'.
func parseToken(s string) (token, int, bool) {
	j := 2 // past "${"
	start := j
	for j < len(s) && isNameByte(s[j], j > start) {
		j++
	}
	if j == start {
		return token{}, 0, false
	}
	name := s[start:j]

	if j < len(s) && s[j] == '}' {
		return token{name: name}, j + 1, true
	}
	if j+1 < len(s) && s[j] == ':' && s[j+1] == '-' {
		end := strings.IndexByte(s[j+2:], '}')
		if end < 0 {
			return token{}, 0, false
		}
		return token{name: name, def: s[j+2 : j+2+end], hasDefault: true}, j + 2 + end + 1, true
	}
	return token{}, 0, false
}

func isNameByte(c byte, notFirst bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return notFirst
	default:
		return false
	}
}
