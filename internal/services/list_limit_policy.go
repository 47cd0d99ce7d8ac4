package services

import (
	"strconv"
	"strings"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// ResolveListLimit parses a ?limit= query value. Blank means the default;
// values above MaxHistoryLimit are clamped.
func ResolveListLimit(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DefaultHistoryLimit, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0, ErrInvalidLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit, nil
	}
	return limit, nil
}
