// utils/validate.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRe accepts digits, spaces, dashes and parentheses with an optional
// leading +, at least ten characters long.
var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names from json tags so the error map lines up with the
	// request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// LoginForm carries the login submission
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupForm carries the account-creation submission
type SignupForm struct {
	FirstName       string `json:"first_name" validate:"required"`
	PhoneNumber     string `json:"phone_number" validate:"required,phone"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// fieldMessages maps field name and failed rule to the user-facing message.
var fieldMessages = map[string]map[string]string{
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
	},
	"first_name": {
		"required": "First name is required",
	},
	"phone_number": {
		"required": "Phone number is required",
		"phone":    "Please enter a valid phone number",
	},
	"confirm_password": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}

// ValidateForm checks a form struct and returns a field-to-message map. The
// map is empty when the form is valid. Validation never raises past this
// map; callers block submission whenever it is non-empty.
func ValidateForm(form interface{}) map[string]string {
	fieldErrs := make(map[string]string)

	err := validate.Struct(form)
	if err == nil {
		return fieldErrs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs["form"] = "Something went wrong. Please try again."
		return fieldErrs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fieldErrs[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			fieldErrs[field] = msg
			continue
		}
		fieldErrs[field] = fmt.Sprintf("Invalid value for %s", field)
	}
	return fieldErrs
}
