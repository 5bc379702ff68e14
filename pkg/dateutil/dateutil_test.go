package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var ref = day(2020, time.March, 10)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		text   string
		format string
		loc    string
		want   time.Time
		ok     bool
	}{
		{name: "full", text: "12-06-2020", format: DefaultFormat, want: day(2020, time.December, 6), ok: true},
		{name: "year from ref", text: "12-06", format: DefaultFormat, want: day(2020, time.December, 6), ok: true},
		{name: "year first", text: "07/04", format: "yyyy/MM/dd", want: day(2020, time.July, 4), ok: true},
		{name: "month name", text: "6 juin 2021", format: "d MMMM yyyy", loc: "fr", want: day(2021, time.June, 6), ok: true},
		{name: "garbage", text: "incorrect format", format: DefaultFormat},
		{name: "empty", text: "", format: DefaultFormat},
		{name: "bad pattern", text: "12-06-2020", format: "MM-dd-xxxx"},
		{name: "impossible day", text: "02-30-2020", format: DefaultFormat},
		{name: "no year to drop", text: "12-06", format: "MM-dd-yy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tc.text, tc.format, ref, locale.Resolve(tc.loc))
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatAndPlaceholder(t *testing.T) {
	t.Parallel()

	got, ok := Format(day(2020, time.December, 6), DefaultFormat, locale.Default())
	require.True(t, ok)
	require.Equal(t, "12-06-2020", got)

	_, ok = Format(day(2020, time.December, 6), "HH:mm a", locale.Default())
	require.False(t, ok)

	require.Equal(t, "MM-DD-YYYY", Placeholder(DefaultFormat))
}

func TestModifierMatch(t *testing.T) {
	t.Parallel()

	jan1 := day(2020, time.January, 1)
	jan31 := day(2020, time.January, 31)

	cases := []struct {
		name string
		mod  Modifier
		day  time.Time
		want bool
	}{
		{name: "exact day", mod: Days(day(2020, time.May, 1)), day: time.Date(2020, time.May, 1, 15, 0, 0, 0, time.UTC), want: true},
		{name: "other day", mod: Days(day(2020, time.May, 1)), day: day(2020, time.May, 2)},
		{name: "before", mod: Before(jan1), day: day(2019, time.December, 31), want: true},
		{name: "before is strict", mod: Before(jan1), day: jan1},
		{name: "after", mod: After(jan1), day: day(2020, time.January, 2), want: true},
		{name: "after is strict", mod: After(jan1), day: jan1},
		{name: "range start", mod: Range(jan1, jan31), day: jan1, want: true},
		{name: "range end", mod: Range(jan1, jan31), day: jan31, want: true},
		{name: "past range", mod: Range(jan1, jan31), day: day(2020, time.February, 1)},
		{name: "weekday", mod: DaysOfWeek(time.Sunday, time.Monday), day: day(2020, time.December, 6), want: true},
		{name: "other weekday", mod: DaysOfWeek(time.Sunday, time.Monday), day: day(2020, time.December, 4)},
		{name: "between", mod: Modifier{After: &jan1, Before: &jan31}, day: day(2020, time.January, 15), want: true},
		{name: "between excludes ends", mod: Modifier{After: &jan1, Before: &jan31}, day: jan31},
		{name: "between excludes outside", mod: Modifier{After: &jan1, Before: &jan31}, day: day(2020, time.March, 1)},
		{name: "outside", mod: Modifier{After: &jan31, Before: &jan1}, day: day(2020, time.March, 1), want: true},
		{name: "outside early", mod: Modifier{After: &jan31, Before: &jan1}, day: day(2019, time.March, 1), want: true},
		{name: "outside excludes window", mod: Modifier{After: &jan31, Before: &jan1}, day: day(2020, time.January, 15)},
		{name: "empty", mod: Modifier{}, day: jan1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, tc.mod.Match(tc.day))
			require.Equal(t, tc.want, MatchDay(tc.day, tc.mod))
		})
	}

	require.True(t, Modifier{}.IsEmpty())
	require.False(t, Before(jan1).IsEmpty())
	require.False(t, MatchDay(jan1))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	mods := []Modifier{
		DaysOfWeek(time.Sunday, time.Monday),
		Before(day(2020, time.January, 1)),
		After(day(2021, time.January, 1)),
	}

	cases := []struct {
		text string
		rule string
	}{
		{text: "incorrect format", rule: RuleFormat},
		{text: "12-06-2020", rule: RuleDisabledDate},
		{text: "12-06-2019", rule: RuleMinDate},
		{text: "12-06-2021", rule: RuleMaxDate},
		{text: "12-04-2020"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			res := Validate(tc.text, DefaultFormat, ref, locale.Default(), mods...)
			if tc.rule == "" {
				require.True(t, res.Valid())
				require.Empty(t, res.Errors)
				return
			}
			require.False(t, res.Valid())
			require.Equal(t, map[string]string{tc.rule: DefaultMessages[tc.rule]}, res.Errors)
		})
	}
}

func TestValidateWithMessages(t *testing.T) {
	t.Parallel()

	res := ValidateWithMessages(map[string]string{RuleDisabledDate: "Closed"}, "12-06-2020", DefaultFormat, ref, locale.Default(), DaysOfWeek(time.Sunday))
	require.True(t, res.OK)
	require.Equal(t, map[string]string{RuleDisabledDate: "Closed"}, res.Errors)

	res = ValidateWithMessages(nil, "nope", DefaultFormat, ref, locale.Default())
	require.False(t, res.OK)
	require.Equal(t, "The date format is incorrect", res.Errors[RuleFormat])
}

func TestNavigate(t *testing.T) {
	t.Parallel()

	start := day(2021, time.January, 31)
	cases := []struct {
		key  NavKey
		want time.Time
	}{
		{key: NavLeft, want: day(2021, time.January, 30)},
		{key: NavRight, want: day(2021, time.February, 1)},
		{key: NavUp, want: day(2021, time.January, 24)},
		{key: NavDown, want: day(2021, time.February, 7)},
		{key: NavPageUp, want: day(2020, time.December, 31)},
		{key: NavPageDown, want: day(2021, time.February, 28)},
		{key: NavHome, want: day(2021, time.January, 1)},
		{key: NavEnd, want: day(2021, time.January, 31)},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Navigate(start, tc.key), "key %d", tc.key)
	}

	require.Equal(t, day(2024, time.February, 29), AddMonths(day(2024, time.March, 31), -1))
	require.Equal(t, day(2025, time.January, 15), AddMonths(day(2024, time.November, 15), 2))
	require.Equal(t, day(2024, time.February, 29), LastOfMonth(day(2024, time.February, 3)))
}

func TestMonthGrid(t *testing.T) {
	t.Parallel()

	// December 2020 starts on a Tuesday.
	grid := MonthGrid(day(2020, time.December, 17), time.Sunday)
	require.Equal(t, day(2020, time.November, 29), grid[0][0])
	require.Equal(t, day(2020, time.December, 1), grid[0][2])
	require.Equal(t, day(2021, time.January, 9), grid[5][6])

	monday := MonthGrid(day(2020, time.December, 17), time.Monday)
	require.Equal(t, day(2020, time.November, 30), monday[0][0])
	require.Equal(t, time.Monday, monday[3][0].Weekday())

	// February 2015 fits four rows exactly but the grid still has six.
	feb := MonthGrid(day(2015, time.February, 10), time.Sunday)
	require.Equal(t, day(2015, time.February, 1), feb[0][0])
	require.Equal(t, day(2015, time.March, 14), feb[5][6])

	require.Equal(t, [7]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}, WeekdayOrder(time.Monday))
}
