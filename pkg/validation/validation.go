// Package validation checks the text of input fields. Validators run in order
// and the first failing rule is reported with its message.
package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

// Rule names of the built-in validators.
const (
	RuleRequired = "required"
	RuleNumber   = "number"
	RuleEmail    = "email"
	RuleTime     = "time"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("typed_time", func(fl validator.FieldLevel) bool {
			_, ok := timeutil.ParseTime(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		validateInst = v
	})

	return validateInst
}

// Validator checks a value against a validator tag and names the rule it
// enforces.
type Validator struct {
	Rule string
	Tag  string
}

// Built-in validators. Only Required rejects empty text.
var (
	Required = Validator{Rule: RuleRequired, Tag: "required,not_blank"}
	Number   = Validator{Rule: RuleNumber, Tag: "omitempty,numeric"}
	Email    = Validator{Rule: RuleEmail, Tag: "omitempty,email"}
	Time     = Validator{Rule: RuleTime, Tag: "omitempty,typed_time"}
)

// Custom builds a validator from any validator tag, such as "max=20".
func Custom(rule, tag string) Validator {
	return Validator{Rule: rule, Tag: tag}
}

// Check reports whether value passes v. Like validator.Var it panics on an
// undefined tag.
func (v Validator) Check(value string) bool {
	return validatorInstance().Var(value, v.Tag) == nil
}

// Chain runs validators in order and returns the rule of the first failure.
func Chain(value string, validators ...Validator) (string, bool) {
	for _, v := range validators {
		if !v.Check(value) {
			return v.Rule, false
		}
	}
	return "", true
}

// Messages runs Chain and maps the failing rule to its message. The rule
// name stands in for a missing message. A passing value yields nil.
func Messages(value string, messages map[string]string, validators ...Validator) map[string]string {
	rule, ok := Chain(value, validators...)
	if ok {
		return nil
	}
	msg, found := messages[rule]
	if !found {
		msg = rule
	}
	return map[string]string{rule: msg}
}

// Field tracks the validation state of one input. Errors stay hidden until
// the value is first changed.
type Field struct {
	validators []Validator
	messages   map[string]string
	touched    bool
	errors     map[string]string
}

// NewField creates a Field with its messages and validators.
func NewField(messages map[string]string, validators ...Validator) *Field {
	return &Field{validators: validators, messages: messages}
}

// Init validates an initial value without marking the field as changed.
func (f *Field) Init(value string) {
	f.errors = Messages(value, f.messages, f.validators...)
}

// Change records a new value and returns the current errors.
func (f *Field) Change(value string) map[string]string {
	f.touched = true
	f.errors = Messages(value, f.messages, f.validators...)
	return f.Errors()
}

// Errors returns the errors to display.
func (f *Field) Errors() map[string]string {
	if !f.touched {
		return nil
	}
	return f.errors
}

// Valid reports whether the last validated value passed.
func (f *Field) Valid() bool {
	return len(f.errors) == 0
}

// Touched reports whether the value has changed since creation.
func (f *Field) Touched() bool {
	return f.touched
}
