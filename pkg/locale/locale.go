// Package locale resolves locale names to calendar data (month and weekday names,
// default time and day renderings) from an explicit table of CLDR translators.
package locale

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"golang.org/x/text/language"
)

// DefaultName is the locale used when nothing better matches.
const DefaultName = "en-US"

type entry struct {
	tag language.Tag
	new func() locales.Translator
}

// The first entry is the matcher fallback.
var table = []entry{
	{tag: language.AmericanEnglish, new: en_US.New},
	{tag: language.BritishEnglish, new: en_GB.New},
	{tag: language.English, new: en.New},
	{tag: language.French, new: fr.New},
	{tag: language.German, new: de.New},
	{tag: language.Spanish, new: es.New},
	{tag: language.Japanese, new: ja.New},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(table))
	for i, e := range table {
		tags[i] = e.tag
	}
	return language.NewMatcher(tags)
}()

// Locale bundles a language tag with its calendar translator.
type Locale struct {
	tag language.Tag
	tr  locales.Translator
}

// Default returns the en-US locale.
func Default() Locale {
	return newLocale(table[0])
}

// Names lists the locale names known to the table, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.tag.String())
	}
	sort.Strings(names)
	return names
}

// Lookup returns the locale whose tag equals name exactly. Underscores are
// accepted as separators ("en_US").
func Lookup(name string) (Locale, bool) {
	tag, err := language.Parse(normalizeName(name))
	if err != nil {
		return Locale{}, false
	}
	for _, e := range table {
		if e.tag.String() == tag.String() {
			return newLocale(e), true
		}
	}
	return Locale{}, false
}

// Match returns the closest table entry for name. It reports false when the
// name cannot be parsed or no entry is close enough.
func Match(name string) (Locale, bool) {
	if l, ok := Lookup(name); ok {
		return l, true
	}
	tag, err := language.Parse(normalizeName(name))
	if err != nil {
		return Locale{}, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Locale{}, false
	}
	return newLocale(table[index]), true
}

// Resolve returns the best table match for name, falling back to en-US when
// the name cannot be parsed or nothing in the table is close enough.
func Resolve(name string) Locale {
	if l, ok := Match(name); ok {
		return l
	}
	return Default()
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
}

func newLocale(e entry) Locale {
	return Locale{tag: e.tag, tr: e.new()}
}

func (l Locale) translator() locales.Translator {
	if l.tr == nil {
		return table[0].new()
	}
	return l.tr
}

// Name returns the BCP 47 name of the locale.
func (l Locale) Name() string {
	if l.tr == nil {
		return DefaultName
	}
	return l.tag.String()
}

// Tag returns the language tag.
func (l Locale) Tag() language.Tag {
	if l.tr == nil {
		return table[0].tag
	}
	return l.tag
}

// FormatTime renders the clock part of t the way the locale prints a medium
// time (for example "2:30:20 pm" for en, "14:30:20" for fr).
func (l Locale) FormatTime(t time.Time) string {
	return l.translator().FmtTimeMedium(t)
}

// FormatDay renders the full date label of a calendar cell.
func (l Locale) FormatDay(t time.Time) string {
	return l.translator().FmtDateFull(t)
}

// MonthName returns the wide month name.
func (l Locale) MonthName(m time.Month) string {
	return l.translator().MonthWide(m)
}

// MonthShort returns the abbreviated month name.
func (l Locale) MonthShort(m time.Month) string {
	return l.translator().MonthAbbreviated(m)
}

// Months returns the twelve wide month names, January first.
func (l Locale) Months() []string {
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, l.MonthName(m))
	}
	return months
}

// Weekday returns the wide weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	return l.translator().WeekdayWide(d)
}

// WeekdayAbbr returns the abbreviated weekday name ("Mon").
func (l Locale) WeekdayAbbr(d time.Weekday) string {
	return l.translator().WeekdayAbbreviated(d)
}

// WeekdayShort returns the short weekday name ("Mo").
func (l Locale) WeekdayShort(d time.Weekday) string {
	return l.translator().WeekdayShort(d)
}

// WeekdaysLong returns the wide weekday names, Sunday first.
func (l Locale) WeekdaysLong() []string {
	days := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, l.Weekday(d))
	}
	return days
}

// WeekdaysShort returns the short weekday names, Sunday first.
func (l Locale) WeekdaysShort() []string {
	days := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, l.WeekdayShort(d))
	}
	return days
}

// LookupMonth matches text against the wide then abbreviated month names,
// ignoring case. It returns the longest match so "June" wins over "Jun".
func (l Locale) LookupMonth(text string) (time.Month, int, bool) {
	var (
		best   time.Month
		length int
	)
	lower := strings.ToLower(text)
	for m := time.January; m <= time.December; m++ {
		for _, name := range []string{l.MonthName(m), l.MonthShort(m)} {
			if name == "" {
				continue
			}
			n := strings.ToLower(name)
			if strings.HasPrefix(lower, n) && len(n) > length {
				best, length = m, len(n)
			}
		}
	}
	return best, length, length > 0
}
