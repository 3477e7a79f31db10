package row

import (
	"strings"
)

// FormatList renders values as a list literal, for example
// `['Vivenay, N.', "L'Imprimeur"]`. Strings are quoted the same way
// Python's repr does it, so older consumers of the table keep working.
func FormatList(vals []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quote(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func quote(s string) string {
	q := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = '"'
	}
	var sb strings.Builder
	sb.WriteByte(q)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case q:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

// ParseList reads a list literal created by FormatList. Text that does
// not look like a list is returned as a single value, blank text gives
// nil. Unterminated strings are closed at the end of the input.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return nil
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return []string{s}
	}

	var res []string
	var sb strings.Builder
	var q byte
	escaped := false
	inner := s[1 : len(s)-1]
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if q == 0 {
			if c == '\'' || c == '"' {
				q = c
				sb.Reset()
			}
			continue
		}
		if escaped {
			switch c {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(c)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case q:
			res = append(res, sb.String())
			q = 0
		default:
			sb.WriteByte(c)
		}
	}
	if q != 0 {
		res = append(res, sb.String())
	}
	return res
}
