// utils/validation.go
package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	multiDotRegex = regexp.MustCompile(`\.+`)
	nonPhoneRegex = regexp.MustCompile(`[^\d+]`)
)

// NormalizeEmailDots collapses runs of dots in the local part of an email
// address. The gateway treats "j.ohn@x.com" and "j..ohn@x.com" as the same
// account, so the canonical form must be sent. The domain part is untouched;
// input without an @ is returned unchanged.
func NormalizeEmailDots(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return email
	}
	return multiDotRegex.ReplaceAllString(email[:at], ".") + email[at:]
}

// SanitizeEmail trims, lowercases and validates an email address
func SanitizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return "", errors.New("invalid email format")
	}
	return email, nil
}

// SanitizePhone sanitizes and validates a phone number. Phone is optional;
// an empty input yields an empty output.
func SanitizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", nil
	}

	phone = nonPhoneRegex.ReplaceAllString(phone, "")
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	if len(phone) < 8 || len(phone) > 15 {
		return "", errors.New("invalid phone number length")
	}
	return phone, nil
}
