package template

import (
	"strconv"
	"strings"

	"github.com/shamimbinnur/jerd/internal/calendar"
)

// tokens are matched longest first. Entries have no time of day, so the
// clock tokens always print midnight.
var tokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"DD", "D",
	"dddd", "ddd", "dd", "d",
	"HH", "H", "hh", "h",
	"mm", "m", "ss", "s",
	"A", "a",
}

// FormatDate formats d with a dayjs-style pattern such as
// "dddd, MMMM D, YYYY". Text inside [brackets] is copied as is, as is any
// character that isn't part of a token.
func FormatDate(pattern string, d calendar.Date) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i:], ']'); end > 0 {
				b.WriteString(pattern[i+1 : i+end])
				i += end + 1
				continue
			}
		}
		tok := matchToken(pattern[i:])
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(formatToken(tok, d))
		i += len(tok)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func formatToken(tok string, d calendar.Date) string {
	switch tok {
	case "YYYY":
		return strconv.Itoa(d.Year())
	case "YY":
		return pad2(d.Year() % 100)
	case "MMMM":
		return d.Month().String()
	case "MMM":
		return d.Month().String()[:3]
	case "MM":
		return pad2(int(d.Month()))
	case "M":
		return strconv.Itoa(int(d.Month()))
	case "DD":
		return pad2(d.Day())
	case "D":
		return strconv.Itoa(d.Day())
	case "dddd":
		return d.Weekday().String()
	case "ddd":
		return d.Weekday().String()[:3]
	case "dd":
		return d.Weekday().String()[:2]
	case "d":
		return strconv.Itoa(int(d.Weekday()))
	case "HH", "mm", "ss":
		return "00"
	case "hh":
		return "12"
	case "h":
		return "12"
	case "A":
		return "AM"
	case "a":
		return "am"
	default: // H, m, s
		return "0"
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
