package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	limit := width - 5
	if width == 0 || limit <= indent {
		return s
	}
	prefix := strings.Repeat(" ", indent)

	var ret strings.Builder
	for paraNum, para := range strings.Split(s, "\n") {
		if paraNum > 0 {
			ret.WriteString("\n")
			ret.WriteString(prefix)
		}
		col := indent
		onLine := false
		i := 0
		for i < len(para) {
			// A chunk is a run of spaces plus the word after it; the spacing is
			// preserved, so "foo.  Bar" keeps its two spaces unless a line break
			// lands there.
			sepLen := 0
			for i+sepLen < len(para) && para[i+sepLen] == ' ' {
				sepLen++
			}
			wordLen := 0
			for i+sepLen+wordLen < len(para) && para[i+sepLen+wordLen] != ' ' {
				wordLen++
			}
			chunk := para[i : i+sepLen+wordLen]
			i += len(chunk)

			switch {
			case !onLine:
				ret.WriteString(chunk)
				col += len(chunk)
				onLine = true
			case col+len(chunk) >= limit:
				ret.WriteString("\n")
				ret.WriteString(prefix)
				ret.WriteString(chunk[sepLen:])
				col = indent + wordLen
			default:
				ret.WriteString(chunk)
				col += len(chunk)
			}
		}
	}
	return ret.String()
}
