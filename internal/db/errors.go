package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/accessaid/internal/models"
	"gorm.io/gorm"
)

// translateError maps driver and gorm failures onto the shared error kinds.
// Errors that match no kind are returned wrapped with the entity name.
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrConstraintViolation) || errors.Is(err, models.ErrValidation) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %w", entity, models.ErrNotFound)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", entity, models.ErrConstraintViolation)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, models.ErrNotFound)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint") ||
		strings.Contains(message, "duplicate key value")
}
