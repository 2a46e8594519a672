package boon

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// jsonPointer is an RFC 6901 pointer in its escaped string form: empty, or
// a sequence of "/"-prefixed tokens with "~0"/"~1" escapes intact.
type jsonPointer string

func (ptr jsonPointer) isEmpty() bool {
	return ptr == ""
}

func (ptr jsonPointer) concat(next jsonPointer) jsonPointer {
	return ptr + next
}

// append extends the pointer with one unescaped token.
func (ptr jsonPointer) append(tok string) jsonPointer {
	return ptr + jsonPointer(jsonpointer.Format(tok))
}

func (ptr jsonPointer) append2(tok1, tok2 string) jsonPointer {
	return ptr + jsonPointer(jsonpointer.Format(tok1, tok2))
}

// validateJSONPointer rejects pointers whose '~' escapes are malformed.
func validateJSONPointer(s string) error {
	if s != "" && !strings.HasPrefix(s, "/") {
		return &InvalidJSONPointerError{s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			continue
		}
		if i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1') {
			return &InvalidJSONPointerError{s}
		}
		i++
	}
	return nil
}

// unescape reverts RFC 6901 escaping in a single pointer token. The token
// must already have passed validateJSONPointer.
func unescape(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	var sb strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			sb.WriteByte(tok[i])
			continue
		}
		i++
		if tok[i] == '0' {
			sb.WriteByte('~')
		} else {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (ptr jsonPointer) tokens() []string {
	if ptr.isEmpty() {
		return nil
	}
	toks := strings.Split(string(ptr[1:]), "/")
	for i, tok := range toks {
		toks[i] = unescape(tok)
	}
	return toks
}

// lookup walks doc following the pointer. A missing key, an out-of-range
// index or a descent into a primitive reports JSONPointerNotFoundError.
func (up *urlPtr) lookup(doc any) (any, error) {
	v := doc
	for _, tok := range up.ptr.tokens() {
		switch container := v.(type) {
		case map[string]any:
			child, ok := container[tok]
			if !ok {
				return nil, &JSONPointerNotFoundError{up.String()}
			}
			v = child
		case []any:
			index, err := strconv.Atoi(tok)
			if err != nil || index < 0 || index >= len(container) {
				return nil, &JSONPointerNotFoundError{up.String()}
			}
			v = container[index]
		default:
			return nil, &JSONPointerNotFoundError{up.String()}
		}
	}
	return v, nil
}
