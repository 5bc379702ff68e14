package main

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/toolkit/internal/config"
	"github.com/alexisbeaulieu97/toolkit/internal/optcache"
	"github.com/alexisbeaulieu97/toolkit/internal/tui/datepicker"
	"github.com/alexisbeaulieu97/toolkit/internal/tui/timepicker"
	"github.com/alexisbeaulieu97/toolkit/internal/ui/components"
	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
	"github.com/alexisbeaulieu97/toolkit/pkg/validation"
)

func findTimePicker(cfg *config.Config, id string) (config.TimePicker, error) {
	if id == "" && len(cfg.TimePickers) > 0 {
		return cfg.TimePickers[0], nil
	}
	ids := make([]string, 0, len(cfg.TimePickers))
	for _, p := range cfg.TimePickers {
		if p.ID == id {
			return p, nil
		}
		ids = append(ids, p.ID)
	}
	return config.TimePicker{}, fmt.Errorf("unknown time picker %q (available: %v)", id, ids)
}

func findDatePicker(cfg *config.Config, id string) (config.DatePicker, error) {
	if id == "" && len(cfg.DatePickers) > 0 {
		return cfg.DatePickers[0], nil
	}
	ids := make([]string, 0, len(cfg.DatePickers))
	for _, p := range cfg.DatePickers {
		if p.ID == id {
			return p, nil
		}
		ids = append(ids, p.ID)
	}
	return config.DatePicker{}, fmt.Errorf("unknown date picker %q (available: %v)", id, ids)
}

func timePickerConfig(app *AppContext, cfg *config.Config, p config.TimePicker, theme components.Theme) timepicker.Config {
	initial, _ := p.Initial()
	return timepicker.Config{
		ID:       p.ID,
		Label:    p.Label,
		Format:   p.Format,
		Min:      p.MinSeconds(),
		Max:      p.MaxSeconds(),
		Step:     p.Step,
		Locale:   app.LocaleName(p.Locale, cfg),
		Disabled: p.Disabled,
		Initial:  initial,
		Theme:    theme,
	}
}

func datePickerConfig(app *AppContext, cfg *config.Config, p config.DatePicker, theme components.Theme, now time.Time) (datepicker.Config, error) {
	mods, err := p.Modifiers()
	if err != nil {
		return datepicker.Config{}, err
	}
	return datepicker.Config{
		ID:           p.ID,
		Label:        p.Label,
		Format:       p.Format,
		Locale:       app.LocaleName(p.Locale, cfg),
		Today:        p.Reference(now),
		FirstWeekday: cfg.Settings.Weekday(),
		Disabled:     mods,
		Initial:      p.Value,
		Theme:        theme,
	}, nil
}

func timePickerCard(app *AppContext, cfg *config.Config, p config.TimePicker) components.Renderable {
	loc := app.Locale(p.Locale, cfg)
	entry := app.Cache.Get(cacheKey(p, app.LocaleName(p.Locale, cfg)))

	value, ok := p.Initial()
	display := ""
	if ok {
		display, _ = timeutil.FormatTimeIn(value, p.Format, loc)
	}

	clock12 := false
	if layout, err := timefmt.Compile(p.Format); err == nil {
		clock12 = layout.Has(timefmt.Meridiem)
	}

	field := components.NewTextField(labelOr(p.Label, p.ID)).
		WithID(p.ID).
		WithValue(display).
		WithPlaceholder(p.Format)
	if ok && timeutil.IsTimeDisabled(value, p.Disabled...) {
		field.WithErrors(map[string]string{"disabled": "This time is not available"})
	}

	return components.NewCard(p.ID, field,
		components.NewDropdown(entry.Options).
			WithSelected(value).
			WithDisabled(p.Disabled...).
			WithHeight(6),
		components.NewCheckbox("12-hour clock").WithChecked(clock12).WithDisabled(true),
	).WithSubtitle(fmt.Sprintf("%s · %s–%s · every %ds · %d options", p.Format, p.Min, p.Max, p.Step, len(entry.Options)))
}

func datePickerCard(app *AppContext, cfg *config.Config, p config.DatePicker, now time.Time) (components.Renderable, error) {
	loc := app.Locale(p.Locale, cfg)
	mods, err := p.Modifiers()
	if err != nil {
		return nil, err
	}
	today := p.Reference(now)

	field := components.NewTextField(labelOr(p.Label, p.ID)).
		WithID(p.ID).
		WithValue(p.Value).
		WithPlaceholder(dateutil.Placeholder(p.Format))

	month, selected := today, time.Time{}
	if p.Value != "" {
		res := dateutil.Validate(p.Value, p.Format, today, loc, mods...)
		field.WithErrors(res.Errors)
		if res.OK {
			month = res.Date
		}
		if res.Valid() {
			selected = res.Date
		}
	}

	cal := components.NewCalendar(month).
		WithLocale(loc).
		WithFirstWeekday(cfg.Settings.Weekday()).
		WithToday(today).
		WithSelected(selected).
		WithDisabled(mods...)

	return components.NewCard(p.ID, field, cal).
		WithSubtitle(fmt.Sprintf("%s · %d disabled rules", p.Format, len(mods))), nil
}

func textFieldCard(f config.TextField) components.Renderable {
	rules := f.Rules()
	errs := validation.Messages(f.Value, f.Messages, rules...)

	card := components.NewCard(f.ID, components.NewTextField(labelOr(f.Label, f.ID)).
		WithID(f.ID).
		WithValue(f.Value).
		WithPlaceholder(f.Placeholder).
		WithErrors(errs))
	passed := 0
	for _, r := range rules {
		ok := r.Check(f.Value)
		if ok {
			passed++
		}
		card.Add(components.NewCheckbox(r.Rule).WithChecked(ok).WithDisabled(true))
	}
	if len(rules) > 1 {
		card.Add(components.NewCheckbox("all rules").
			WithState(components.StateOf(passed, len(rules))).
			WithDisabled(true))
	}
	return card
}

func cacheKey(p config.TimePicker, localeName string) optcache.Key {
	return optcache.Key{
		Format: p.Format,
		Min:    p.MinSeconds(),
		Max:    p.MaxSeconds(),
		Step:   p.Step,
		Locale: localeName,
	}
}

func labelOr(label, id string) string {
	if label != "" {
		return label
	}
	return id
}
