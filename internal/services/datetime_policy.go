package services

import (
	"strings"
	"time"
)

const DefaultReminderLead = time.Hour

// ParseInstant accepts RFC 3339 timestamps with an explicit offset and
// returns them in UTC. Timestamps without a zone are ambiguous and rejected.
func ParseInstant(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrInvalidDatetime
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, ErrInvalidDatetime
	}
	return parsed.UTC(), nil
}

// ResolveReminderDatetime returns now plus DefaultReminderLead when raw is
// blank.
func ResolveReminderDatetime(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return now.UTC().Add(DefaultReminderLead), nil
	}
	return ParseInstant(raw)
}

// ParseDueDate accepts either a full timestamp or a calendar date, which is
// read as midnight UTC.
func ParseDueDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	if day, err := time.Parse("2006-01-02", value); err == nil {
		return &day, nil
	}
	instant, err := ParseInstant(value)
	if err != nil {
		return nil, err
	}
	return &instant, nil
}
