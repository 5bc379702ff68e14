package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

// DropdownRow is one rendered option. Index is the option's position in the
// unfiltered list; a term-search row has Index -1.
type DropdownRow struct {
	Index    int
	Label    string
	Selected bool
	Disabled bool
	Focused  bool
	Search   bool
}

// FilterFunc reports whether opt stays visible for the typed term.
type FilterFunc func(opt timeutil.Option, term string) bool

// LabelFilter keeps options whose label or "HH:MM:SS" value contains the
// trimmed term, ignoring case. An empty term keeps everything.
func LabelFilter(opt timeutil.Option, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(opt.Label), term) ||
		strings.Contains(timeutil.FormatISO(opt.Value.Time), term)
}

// Dropdown lists time options, marking the selected ones and the ones
// disabled by rules. Rows can be narrowed by a filter term.
type Dropdown struct {
	BaseComponent
	options    []timeutil.Option
	selected   timeutil.Time
	values     []timeutil.Time
	multi      bool
	rules      []timeutil.DisabledTime
	term       string
	filter     FilterFunc
	termSearch bool
	focus      int
	height     int
}

// NewDropdown creates a single-select dropdown over options. No option is
// focused.
func NewDropdown(options []timeutil.Option) *Dropdown {
	return &Dropdown{
		BaseComponent: NewBaseComponent(),
		options:       options,
		filter:        LabelFilter,
		focus:         -1,
		height:        8,
	}
}

// WithSelected sets the current value. Only hours, minutes and seconds are
// compared.
func (d *Dropdown) WithSelected(t timeutil.Time) *Dropdown {
	d.selected = t
	return d
}

// WithMultiSelect switches to multi-select with values as the selection.
func (d *Dropdown) WithMultiSelect(values ...timeutil.Time) *Dropdown {
	d.multi = true
	d.values = append([]timeutil.Time(nil), values...)
	return d
}

// WithDisabled sets the disabled-time rules.
func (d *Dropdown) WithDisabled(rules ...timeutil.DisabledTime) *Dropdown {
	d.rules = rules
	return d
}

// WithFilter narrows the rows to the options matching term.
func (d *Dropdown) WithFilter(term string) *Dropdown {
	d.term = term
	return d
}

// WithFilterFunc replaces LabelFilter. A nil fn restores it.
func (d *Dropdown) WithFilterFunc(fn FilterFunc) *Dropdown {
	if fn == nil {
		fn = LabelFilter
	}
	d.filter = fn
	return d
}

// WithTermSearch adds a leading row offering the typed term itself.
func (d *Dropdown) WithTermSearch(enabled bool) *Dropdown {
	d.termSearch = enabled
	return d
}

// WithFocus highlights the visible row at index; -1 clears it.
func (d *Dropdown) WithFocus(index int) *Dropdown {
	d.focus = index
	return d
}

// WithHeight limits the number of visible rows. Values below 1 show all.
func (d *Dropdown) WithHeight(height int) *Dropdown {
	d.height = height
	return d
}

// WithAppliers adds theme-aware style functions.
func (d *Dropdown) WithAppliers(appliers ...StyleFunc) *Dropdown {
	d.AddAppliers(appliers...)
	return d
}

// MultiSelect reports whether several options can be selected.
func (d *Dropdown) MultiSelect() bool {
	return d.multi
}

// Values returns the multi-select selection in option order. In
// single-select mode it holds the selected option, if any.
func (d *Dropdown) Values() []timeutil.Time {
	var out []timeutil.Time
	for _, opt := range d.options {
		if d.isSelected(opt) {
			out = append(out, opt.Value.Time)
		}
	}
	return out
}

// Toggle flips the visible row at index. In single-select mode the row
// becomes the selection. Disabled rows and the term-search row are ignored.
func (d *Dropdown) Toggle(index int) *Dropdown {
	rows := d.Rows()
	if index < 0 || index >= len(rows) || rows[index].Disabled || rows[index].Search {
		return d
	}
	t := d.options[rows[index].Index].Value.Time
	if !d.multi {
		d.selected = t
		return d
	}
	for i, v := range d.values {
		if sameTime(v, t) {
			d.values = append(d.values[:i:i], d.values[i+1:]...)
			return d
		}
	}
	d.values = append(d.values, t)
	return d
}

// SelectedIndex returns the unfiltered index of the first selected option,
// or -1.
func (d *Dropdown) SelectedIndex() int {
	for i, opt := range d.options {
		if d.isSelected(opt) {
			return i
		}
	}
	return -1
}

func (d *Dropdown) isSelected(opt timeutil.Option) bool {
	if !d.multi {
		return timeutil.IsOptionSelected(opt, d.selected.Hours, d.selected.Minutes, d.selected.Seconds, d.rules...)
	}
	for _, v := range d.values {
		if timeutil.IsOptionSelected(opt, v.Hours, v.Minutes, v.Seconds, d.rules...) {
			return true
		}
	}
	return false
}

func sameTime(a, b timeutil.Time) bool {
	return timeutil.FormatISO(a) == timeutil.FormatISO(b)
}

// Rows returns the visible options with their flags.
func (d *Dropdown) Rows() []DropdownRow {
	rows := make([]DropdownRow, 0, len(d.options)+1)
	if d.termSearch && strings.TrimSpace(d.term) != "" {
		rows = append(rows, DropdownRow{Index: -1, Label: fmt.Sprintf("Search %q", strings.TrimSpace(d.term)), Search: true})
	}
	for i, opt := range d.options {
		if !d.filter(opt, d.term) {
			continue
		}
		rows = append(rows, DropdownRow{
			Index:    i,
			Label:    opt.Label,
			Selected: d.isSelected(opt),
			Disabled: timeutil.IsTimeDisabled(opt.Value.Time, d.rules...),
		})
	}
	if d.focus >= 0 && d.focus < len(rows) {
		rows[d.focus].Focused = true
	}
	return rows
}

// window returns the visible row range, centred on the focus or selection.
func (d *Dropdown) window(rows []DropdownRow) (int, int) {
	n := len(rows)
	if d.height < 1 || n <= d.height {
		return 0, n
	}
	anchor := d.focus
	if anchor < 0 {
		for i, row := range rows {
			if row.Selected {
				anchor = i
				break
			}
		}
	}
	if anchor < 0 {
		anchor = 0
	}
	start := anchor - d.height/2
	start = max(0, min(start, n-d.height))
	return start, start + d.height
}

// View renders with the default theme.
func (d *Dropdown) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (d *Dropdown) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	rows := d.Rows()
	if len(rows) == 0 {
		empty := "no options"
		if d.term != "" {
			empty = fmt.Sprintf("no options match %q", d.term)
		}
		return d.ComputeStyle(theme).Render(theme.Typography.Muted.Render(empty))
	}

	start, end := d.window(rows)
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, theme.Typography.Muted.Render("  ↑"))
	}
	for _, row := range rows[start:end] {
		marker := "  "
		if row.Focused {
			marker = "› "
		}
		label := row.Label
		if d.multi && !row.Search {
			state := Unchecked
			if row.Selected {
				state = Checked
			}
			label = checkMark(state) + " " + label
		}
		style := theme.Option.Normal
		switch {
		case row.Search:
			style = theme.Typography.Muted
		case row.Disabled:
			style = theme.Option.Disabled
		case row.Selected:
			style = theme.Option.Selected
		case row.Focused:
			style = theme.Option.Focused
		}
		lines = append(lines, marker+style.Render(label))
	}
	if end < len(rows) {
		lines = append(lines, theme.Typography.Muted.Render("  ↓"))
	}
	return d.ComputeStyle(theme).Render(strings.Join(lines, "\n"))
}
