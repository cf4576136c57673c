package validator

import (
	"net/mail"
	"regexp"
	"unicode"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit

	maxPhoneLen = 30
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]+$`)

func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func IsValidPassword(password string) bool {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func IsValidName(name string) bool {
	return name != "" && len(name) <= 255
}

func IsValidPhoneNumber(phone string) bool {
	if phone == "" || len(phone) > maxPhoneLen {
		return false
	}
	return phonePattern.MatchString(phone)
}
