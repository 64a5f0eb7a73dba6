package validators

import (
	"reflect"
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"compliancehub/cmd/internal/domain/rules"
)

var (
	// Corporate Identity Number: class letter, 5 digits, state, year,
	// ownership code, 6-digit registration number.
	cinRegex = regexp.MustCompile(`^[LUF]\d{5}[A-Z]{2}\d{4}[A-Z]{3}\d{6}$`)

	// Permanent Account Number.
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

	// GST registration number: state code, PAN, entity digit, literal Z,
	// check character.
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

	specialRegex = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)
)

func IsCINValid(cin string) bool {
	return cinRegex.MatchString(cin)
}

func IsPANValid(pan string) bool {
	return panRegex.MatchString(pan)
}

// IsGSTINValid treats the empty string as valid: GSTIN is an optional
// identifier and absence passes vacuously.
func IsGSTINValid(gstin string) bool {
	if gstin == "" {
		return true
	}
	return gstinRegex.MatchString(gstin)
}

func CIN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	return ok && IsCINValid(val)
}

func PAN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	return ok && IsPANValid(val)
}

func GSTIN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	return ok && IsGSTINValid(val)
}

func InState(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	return ok && rules.IsValidState(val)
}

// DateLayout accepts calendar dates formatted YYYY-MM-DD. The value must
// also parse, so 2024-02-30 fails even though it matches the shape.
func DateLayout(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	val := field.String()
	if !dateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(rules.DateLayout, val)
	return err == nil
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func HasUpper(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsUpper(ch) {
			return true
		}
	}
	return false
}

func HasLower(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsLower(ch) {
			return true
		}
	}
	return false
}

func HasDigit(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

func HasSpecial(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return specialRegex.MatchString(val)
}
