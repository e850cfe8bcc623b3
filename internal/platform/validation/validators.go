package validation

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var plateNumberRegex = regexp.MustCompile(`^[A-Za-z0-9]{7}$`)

// RegisterCustomValidators attaches the application's custom binding
// validators to Gin's validator engine. Must run before any route binds a
// request that uses them.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("platenumber", validPlateNumber); err != nil {
		return err
	}
	return v.RegisterValidation("strongpassword", strongPassword)
}

// validPlateNumber accepts exactly 7 alphanumeric characters.
func validPlateNumber(fl validator.FieldLevel) bool {
	return plateNumberRegex.MatchString(fl.Field().String())
}

// strongPassword requires at least one lowercase letter, one uppercase
// letter and one digit. Length is enforced separately by the min tag.
func strongPassword(fl validator.FieldLevel) bool {
	var hasLower, hasUpper, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
