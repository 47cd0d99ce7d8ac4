package services

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var pinFormatRegex = regexp.MustCompile(`^[0-9]{4}$`)

// NormalizeAuthEmail returns the lowercased bare mailbox, or "" when raw is
// anything other than a plain address. Display names and angle brackets are
// rejected so that one mailbox can only be stored in one form.
func NormalizeAuthEmail(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	address, err := mail.ParseAddress(trimmed)
	if err != nil || address.Name != "" || address.Address != trimmed {
		return ""
	}
	return strings.ToLower(address.Address)
}

func ValidatePIN(raw string) (string, error) {
	pin := strings.TrimSpace(raw)
	if !pinFormatRegex.MatchString(pin) {
		return "", ErrInvalidPIN
	}
	return pin, nil
}

func NormalizeCredentialsInput(emailRaw string, pinRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	pin := strings.TrimSpace(pinRaw)
	if email == "" || pin == "" {
		return "", "", ErrInvalidCredentials
	}
	return email, pin, nil
}

// SplitFullName takes the first word as the first name and the remainder as
// the last name.
func SplitFullName(raw string) (string, string) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func NormalizeTimezone(raw string) (string, error) {
	timezone := strings.TrimSpace(raw)
	if timezone == "" {
		return "", nil
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return "", ErrInvalidTimezone
	}
	return timezone, nil
}
