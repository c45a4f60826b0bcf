package utils

import (
	"github.com/go-playground/validator/v10"
	"regexp"
	"unicode"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// NewValidator returns a validator with the "username" and "password" tags
// registered. Both the server and the CLI validate forms with it.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return IsValidUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return v
}

func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// IsStrongPassword requires at least 8 characters with a letter and a digit.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}
