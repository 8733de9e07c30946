package util

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared field validator.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

func valid(v interface{}, tag string) bool {
	return Validator().Var(v, tag) == nil
}

// IsContactNumber reports whether s is exactly ContactLength decimal digits.
func IsContactNumber(s string) bool {
	return len(s) == ContactLength && valid(s, "len=10,number")
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	return valid(s, "required,number")
}

// IsDate reports whether s is a calendar date written as YYYY-MM-DD.
func IsDate(s string) bool {
	return valid(s, "len=10,datetime="+DateLayout)
}

// IsTime reports whether s is a 24-hour clock time written as HH:MM.
func IsTime(s string) bool {
	return valid(s, "len=5,datetime="+TimeLayout)
}

// IsPositiveInt reports whether n is greater than zero.
func IsPositiveInt(n int) bool {
	return valid(n, "gt=0")
}

// IsPositiveFloat reports whether f is greater than zero.
func IsPositiveFloat(f float64) bool {
	return valid(f, "gt=0")
}

// ParseGender upper-cases s and reports whether it is one of the allowed symbols.
func ParseGender(s string, allowed []string) (string, bool) {
	g := strings.ToUpper(s)
	return g, valid(g, "len=1,oneof="+strings.Join(allowed, " "))
}
