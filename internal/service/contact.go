package service

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[78]?[0-9\s\-()]{10,15}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// IsEmail reports whether contact looks like an email address.
func IsEmail(contact string) bool {
	return emailPattern.MatchString(contact)
}

// IsValidContact accepts an email address or a phone number.
// Whitespace inside phone numbers is ignored.
func IsValidContact(contact string) bool {
	if IsEmail(contact) {
		return true
	}
	return phonePattern.MatchString(strings.Join(strings.Fields(contact), ""))
}

// FormatContact normalises Kazakh/Russian phone numbers to "+7 XXX XXX XX XX".
// Emails and numbers in other shapes are returned unchanged.
func FormatContact(contact string) string {
	if IsEmail(contact) {
		return contact
	}

	digits := nonDigits.ReplaceAllString(contact, "")
	switch {
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
		digits = digits[1:]
	case len(digits) == 10:
	default:
		return contact
	}

	return "+7 " + digits[0:3] + " " + digits[3:6] + " " + digits[6:8] + " " + digits[8:10]
}
