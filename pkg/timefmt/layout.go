// Package timefmt compiles case-sensitive date/time patterns such as
// "hh:mm:ss a" or "MM-dd-yyyy" and uses them to parse and format instants.
//
// Tokens: HH H hh h mm m ss s a yyyy yy MMMM MMM MM M dd d EEEE EEE.
// Text between single quotes is literal and a doubled quote stands for one
// quote. Any other non-letter rune is a literal separator. A space in a pattern matches any
// run of spaces, including none.
package timefmt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

var yearTokenPattern = regexp.MustCompile(`\W?y{4}\W?`)

type token struct {
	literal string
	key     string
	info    *tokenInfo
}

// Layout is a compiled pattern. It is immutable and safe for concurrent use.
type Layout struct {
	pattern    string
	tokens     []token
	components Component
	clock12    bool
}

// Compile tokenizes pattern.
func Compile(pattern string) (*Layout, error) {
	if pattern == "" {
		return nil, newError(pattern, "", ErrInvalidPattern, "empty pattern")
	}

	l := &Layout{pattern: pattern}
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			l.tokens = append(l.tokens, token{literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(pattern)
	clock24 := false
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			start := i
			i++
			closed := false
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						literal.WriteRune('\'')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				literal.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, newError(pattern, "", ErrInvalidPattern, "unterminated quote at %d", start)
			}
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			key := string(runes[i:j])
			info, ok := tokenTable[key]
			if !ok {
				return nil, newError(pattern, "", ErrInvalidPattern, "unknown token %q", key)
			}
			flush()
			l.tokens = append(l.tokens, token{key: key, info: info})
			l.components |= info.component
			l.clock12 = l.clock12 || info.clock12
			clock24 = clock24 || info.clock24
			i = j
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	if clock24 && l.components&Meridiem != 0 {
		return nil, newError(pattern, "", ErrContradiction, "24-hour tokens cannot be combined with a meridiem marker")
	}
	return l, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the source pattern.
func (l *Layout) String() string {
	return l.pattern
}

// Has reports whether the pattern mentions every component in c.
func (l *Layout) Has(c Component) bool {
	return l.components&c == c
}

// Components returns the bitmask of components the pattern mentions.
func (l *Layout) Components() Component {
	return l.components
}

// WithoutYear returns the layout with its four-digit year token and the
// separators directly around it removed. It reports false when the pattern
// has no such token or nothing would remain.
func (l *Layout) WithoutYear() (*Layout, bool) {
	loc := yearTokenPattern.FindStringIndex(l.pattern)
	if loc == nil {
		return nil, false
	}
	stripped := l.pattern[:loc[0]] + l.pattern[loc[1]:]
	out, err := Compile(stripped)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Parse reads text according to the layout. Date fields missing from the
// pattern are taken from ref; clock fields missing from it are zero. The
// result is in ref's location.
func (l *Layout) Parse(text string, ref time.Time, loc locale.Locale) (time.Time, error) {
	year, month, day := ref.Date()
	f := fields{refYear: year, year: year, month: month, day: day}

	pos := 0
	for _, tok := range l.tokens {
		if tok.info == nil {
			n, err := matchLiteral(text[pos:], tok.literal)
			if err != nil {
				return time.Time{}, newError(l.pattern, text, ErrMismatch, "at offset %d: %v", pos, err)
			}
			pos += n
			continue
		}
		n, err := tok.info.parse(text[pos:], &f, loc)
		if err != nil {
			sentinel := ErrMismatch
			if errors.Is(err, ErrOutOfRange) {
				sentinel = ErrOutOfRange
			}
			return time.Time{}, newError(l.pattern, text, sentinel, "token %s at offset %d: %v", tok.key, pos, err)
		}
		pos += n
	}
	if pos != len(text) {
		return time.Time{}, newError(l.pattern, text, ErrMismatch, "unparsed text %q", text[pos:])
	}

	if l.clock12 {
		switch {
		case f.meridiem == "PM" && f.hour < 12:
			f.hour += 12
		case f.meridiem != "PM" && f.hour == 12:
			f.hour = 0
		}
	}

	if f.day > daysIn(f.month, f.year) {
		return time.Time{}, newError(l.pattern, text, ErrOutOfRange, "day %d does not exist in %s %d", f.day, f.month, f.year)
	}

	return time.Date(f.year, f.month, f.day, f.hour, f.minute, f.second, 0, ref.Location()), nil
}

// Format renders t with the layout.
func (l *Layout) Format(t time.Time, loc locale.Locale) string {
	var b strings.Builder
	for _, tok := range l.tokens {
		if tok.info == nil {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteString(tok.info.format(t, loc))
	}
	return b.String()
}

// Parse compiles pattern and parses text with it.
func Parse(pattern, text string, ref time.Time, loc locale.Locale) (time.Time, error) {
	l, err := Compile(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return l.Parse(text, ref, loc)
}

// Format compiles pattern and formats t with it.
func Format(pattern string, t time.Time, loc locale.Locale) (string, error) {
	l, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return l.Format(t, loc), nil
}

func matchLiteral(text, literal string) (int, error) {
	pos := 0
	for _, r := range literal {
		if r == ' ' {
			for pos < len(text) && text[pos] == ' ' {
				pos++
			}
			continue
		}
		want := string(r)
		if !strings.HasPrefix(text[pos:], want) {
			return 0, fmt.Errorf("expected %q", want)
		}
		pos += len(want)
	}
	return pos, nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
