package timeutil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DisabledTime is one disabled-time rule: an exact ISO time, or an inclusive
// From/To range of ISO times within a day.
type DisabledTime struct {
	Time string `json:"time,omitempty" yaml:"time,omitempty"`
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`
}

// UnmarshalYAML accepts a mapping or a bare scalar, the latter being an exact
// time rule.
func (d *DisabledTime) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*d = DisabledTime{Time: node.Value}
		return nil
	case yaml.MappingNode:
		type plain DisabledTime
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*d = DisabledTime(p)
		return nil
	default:
		return fmt.Errorf("line %d: disabled time must be a time or a from/to mapping", node.Line)
	}
}

// IsRange reports whether the rule carries both bounds.
func (d DisabledTime) IsRange() bool {
	return d.From != "" && d.To != ""
}

// MatchExactTime reports whether t renders to the rule's exact time.
func MatchExactTime(t Time, rule DisabledTime) bool {
	if t.IsZero() || rule.Time == "" {
		return false
	}
	return FormatISO(t) == rule.Time
}

// MatchTimeInRange reports whether t falls inside the rule's inclusive range.
// ISO strings are compared directly, so ranges do not cross midnight.
func MatchTimeInRange(t Time, rule DisabledTime) bool {
	if t.IsZero() || !rule.IsRange() {
		return false
	}
	iso := FormatISO(t)
	return rule.From <= iso && iso <= rule.To
}

// IsTimeDisabled reports whether any rule matches t.
func IsTimeDisabled(t Time, rules ...DisabledTime) bool {
	for _, rule := range rules {
		if MatchExactTime(t, rule) || MatchTimeInRange(t, rule) {
			return true
		}
	}
	return false
}

// IsOptionSelected reports whether option holds exactly hours, minutes and
// seconds and is not disabled by rules.
func IsOptionSelected(option Option, hours, minutes, seconds string, rules ...DisabledTime) bool {
	v := option.Value.Time
	if v.IsZero() {
		return false
	}
	return v.Hours == hours &&
		v.Minutes == minutes &&
		v.Seconds == seconds &&
		!IsTimeDisabled(v, rules...)
}
