package schema

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when no JSON value could be extracted from a string.
var ErrNoJSON = errors.New("no JSON value found")

// ExtractJSON pulls the first JSON object or array out of a model reply.
// Model output frequently wraps JSON in prose or ```json fences; callers
// should never have to care.
func ExtractJSON(s string) ([]byte, error) {
	candidates := make([]string, 0, 3)
	candidates = append(candidates, s)
	if fenced := stripFences(s); fenced != s {
		candidates = append(candidates, fenced)
	}
	if block := firstBlock(s); block != "" {
		candidates = append(candidates, block)
	}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if json.Valid([]byte(c)) && (c[0] == '{' || c[0] == '[') {
			return []byte(c), nil
		}
	}
	return nil, ErrNoJSON
}

// DecodeLoose extracts the first JSON value from s and unmarshals it into v.
func DecodeLoose(s string, v any) error {
	bs, err := ExtractJSON(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(bs, v)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// firstBlock returns the first balanced {...} or [...] block in s.
func firstBlock(s string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
