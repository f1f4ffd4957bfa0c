package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, drops combining marks and recomposes whatever is left.
// transform.Chain keeps internal state, so a fresh chain is built per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// String returns the canonical form of s.
//
// Steps:
//  1. The text is lowercased.
//  2. NFD decomposition turns "ã" into "a" + U+0303.
//  3. Combining marks are removed.
//  4. Leading and trailing whitespace is trimmed.
//
// Lowercasing happens first so that any mark produced by case mapping is
// stripped as well, which keeps the function idempotent.
//
// Complexity: O(len(s)).
func String(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	out, _, err := transform.String(stripMarks(), lower)
	if err != nil {
		out = lower
	}

	return strings.TrimSpace(out)
}

// Value normalizes a loosely typed cell value. Strings, byte slices, string
// pointers and fmt.Stringer values are normalized with String; everything else,
// including nil, yields "".
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return String(x)
	case *string:
		if x == nil {
			return ""
		}
		return String(*x)
	case []byte:
		return String(string(x))
	case fmt.Stringer:
		return String(safeString(x))
	default:
		return ""
	}
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b string) bool {
	return String(a) == String(b)
}

// safeString calls s.String, treating a panic (typed-nil receiver) as "".
func safeString(s fmt.Stringer) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	return s.String()
}
