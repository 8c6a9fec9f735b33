// Package validate checks equipment records against the fixed serial number
// and date patterns before they may be persisted.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// The patterns are searched for anywhere in the field, not anchored: a value
// only has to contain a match. Calendar validity is not checked.
var (
	serialPattern = regexp.MustCompile(`\d\d-\d\d\d`)
	datePattern   = regexp.MustCompile(`\d\d\d\d/\d\d/\d\d`)
)

// Validator checks the struct tags declared on domain.Equipment.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the "serial" and "ymd" rules registered.
// Registration only fails on a programming error, so it panics.
func New() *Validator {
	v := validator.New()
	if err := registerRules(v); err != nil {
		panic("validate: register rules: " + err.Error())
	}
	return &Validator{v: v}
}

// Check reports whether e passes every format rule. The result is pass/fail
// only; callers report a single fixed message on failure.
func (v *Validator) Check(e domain.Equipment) bool {
	return v.v.Struct(e) == nil
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("serial", isSerialNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("ymd", isDate); err != nil {
		return err
	}
	return nil
}

func isSerialNumber(fl validator.FieldLevel) bool {
	return serialPattern.MatchString(fl.Field().String())
}

func isDate(fl validator.FieldLevel) bool {
	return datePattern.MatchString(fl.Field().String())
}
