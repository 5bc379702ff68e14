package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/toolkit/pkg/dateutil"
	toolkiterrors "github.com/alexisbeaulieu97/toolkit/pkg/errors"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timefmt"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	widgetIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	isoTimePattern  = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			return widgetIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("time_format", func(fl validator.FieldLevel) bool {
			l, err := timefmt.Compile(fl.Field().String())
			return err == nil && l.Has(timefmt.Hour|timefmt.Minute)
		})

		_ = v.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
			l, err := timefmt.Compile(fl.Field().String())
			return err == nil && l.Has(timefmt.Month|timefmt.Day)
		})

		_ = v.RegisterValidation("iso_time", func(fl validator.FieldLevel) bool {
			return ValidISOTime(fl.Field().String())
		})

		_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidISOTime reports whether s is a zero-padded "HH:MM:SS" time within one
// day.
func ValidISOTime(s string) bool {
	return isoTimePattern.MatchString(s)
}

// ValidateConfig performs schema and cross-field validation on a stories
// document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return toolkiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateLocale("settings.locale", cfg.Settings.Locale); err != nil {
		return err
	}

	ids := make(map[string]string)
	claim := func(field, id string) error {
		if prev, exists := ids[id]; exists {
			return toolkiterrors.NewValidationError(field, fmt.Sprintf("duplicate widget id %q (first used by %s)", id, prev), nil)
		}
		ids[id] = field
		return nil
	}

	for i, p := range cfg.TimePickers {
		if err := claim(fieldFor("timepickers", i, "id"), p.ID); err != nil {
			return err
		}
		if err := ValidateTimePicker(p, i); err != nil {
			return err
		}
	}

	for i, p := range cfg.DatePickers {
		if err := claim(fieldFor("datepickers", i, "id"), p.ID); err != nil {
			return err
		}
		if err := ValidateDatePicker(p, i); err != nil {
			return err
		}
	}

	for i, f := range cfg.Fields {
		if err := claim(fieldFor("fields", i, "id"), f.ID); err != nil {
			return err
		}
	}

	return nil
}

// ValidateTimePicker checks the rules that span several fields of a time
// picker at position index.
func ValidateTimePicker(p TimePicker, index int) error {
	if err := validateLocale(fieldFor("timepickers", index, "locale"), p.Locale); err != nil {
		return err
	}
	if p.MinSeconds() > p.MaxSeconds() {
		return toolkiterrors.NewValidationError(fieldFor("timepickers", index, "max"), fmt.Sprintf("max %s is before min %s", p.Max, p.Min), nil)
	}
	if n := timeutil.OptionCount(p.MinSeconds(), p.MaxSeconds(), p.Step); n > timeutil.MaxOptions {
		return toolkiterrors.NewValidationError(fieldFor("timepickers", index, "step"), fmt.Sprintf("step %d yields %d options, more than %d", p.Step, n, timeutil.MaxOptions), nil)
	}
	if p.Value != "" {
		if _, ok := p.Initial(); !ok {
			return toolkiterrors.NewValidationError(fieldFor("timepickers", index, "value"), fmt.Sprintf("%q is not a time in format %q", p.Value, p.Format), nil)
		}
	}
	for j, rule := range p.Disabled {
		field := fmt.Sprintf("%s[%d]", fieldFor("timepickers", index, "disabled"), j)
		if err := validateDisabledTime(field, rule); err != nil {
			return err
		}
	}
	return nil
}

func validateDisabledTime(field string, rule timeutil.DisabledTime) error {
	switch {
	case rule.Time != "" && (rule.From != "" || rule.To != ""):
		return toolkiterrors.NewValidationError(field, "use either time or from/to", nil)
	case rule.Time != "":
		if !ValidISOTime(rule.Time) {
			return toolkiterrors.NewValidationError(field+".time", fmt.Sprintf("%q is not HH:MM:SS", rule.Time), nil)
		}
	case rule.IsRange():
		if !ValidISOTime(rule.From) || !ValidISOTime(rule.To) {
			return toolkiterrors.NewValidationError(field, "from and to must be HH:MM:SS", nil)
		}
		if rule.From > rule.To {
			return toolkiterrors.NewValidationError(field+".to", "ranges cannot cross midnight", nil)
		}
	default:
		return toolkiterrors.NewValidationError(field, "needs time or both from and to", nil)
	}
	return nil
}

// ValidateDatePicker checks the rules that span several fields of a date
// picker at position index.
func ValidateDatePicker(p DatePicker, index int) error {
	if err := validateLocale(fieldFor("datepickers", index, "locale"), p.Locale); err != nil {
		return err
	}
	for j, d := range p.Disabled {
		field := fmt.Sprintf("%s[%d]", fieldFor("datepickers", index, "disabled"), j)
		m, err := d.Modifier()
		if err != nil {
			return toolkiterrors.NewValidationError(field, "invalid date", err)
		}
		if m.IsEmpty() {
			return toolkiterrors.NewValidationError(field, "rule matches nothing", nil)
		}
	}
	if p.Value != "" {
		ref := p.Reference(time.Now())
		if _, ok := dateutil.Parse(p.Value, p.Format, ref, locale.Resolve(p.Locale)); !ok {
			return toolkiterrors.NewValidationError(fieldFor("datepickers", index, "value"), fmt.Sprintf("%q is not a date in format %q", p.Value, p.Format), nil)
		}
	}
	return nil
}

func validateLocale(field, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := locale.Match(name); !ok {
		return toolkiterrors.NewLocaleError(field, name, errors.New("no close match in the locale table"))
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return toolkiterrors.NewValidationError(field, msg, err)
	}

	return toolkiterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, which already
// carries yaml names.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
