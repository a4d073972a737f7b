package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// validate is shared; *validator.Validate caches parsed tags and is safe
// for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("min_utf16", minUTF16); err != nil {
		panic(fmt.Sprintf("validation: register min_utf16: %v", err))
	}
	return v
}

// minUTF16 is "min" for strings measured in UTF-16 code units, the length
// a browser reports: a character outside the BMP counts twice.
func minUTF16(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: bad min_utf16 param %q", fl.Param()))
	}
	return utf16Len(field.String()) >= n
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ── Single values ────────────────────────────────────────────────────────────

// Var reports whether value satisfies the tag expression.
//
//	validation.Var("Alice", "min=5")          // true
//	validation.Var("😀😀😀", "min_utf16=5")    // true, six code units
//	validation.Var("acom", "contains=@")      // false
//	validation.Var(false, "required")         // false
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// VarWithValue reports whether value satisfies a tag that compares it
// against other, e.g. "eqcsfield".
//
//	validation.VarWithValue("Secret12", "Secret12", "required,eqcsfield") // true
func VarWithValue(value, other any, tag string) bool {
	return validate.VarWithValue(value, other, tag) == nil
}

// ── Structs ──────────────────────────────────────────────────────────────────

// Struct validates v using its `validate:"..."` struct tags and returns the
// underlying validator.ValidationErrors on failure.
func Struct(v any) error {
	return validate.Struct(v)
}

// Fields flattens a Struct error into a field → failed tag map.
// It returns nil when err is not a validation error.
func Fields(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
