package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/accessaid/internal/db"
	"github.com/terraincognita07/accessaid/internal/models"
	"github.com/terraincognita07/accessaid/internal/security"
	"github.com/terraincognita07/accessaid/internal/services"
)

const pinLength = 4

// RunResetPINCommand replaces the PIN of the account behind email with a
// random one and prints it.
func RunResetPINCommand(repositories *db.Repositories, email string, out io.Writer) error {
	auth := services.NewAuthService(repositories.Users)
	user, err := findUserByEmail(auth, email)
	if err != nil {
		return err
	}

	pin, err := generatePIN()
	if err != nil {
		return fmt.Errorf("generate pin: %w", err)
	}
	if err := auth.SetPIN(user.ID, pin); err != nil {
		return fmt.Errorf("update user pin: %w", err)
	}

	fmt.Fprintln(out, "PIN reset successful")
	fmt.Fprintf(out, "New PIN for %s: %s\n", user.Email, pin)
	return nil
}

// RunSetPINCommand prompts for a new PIN without echo and stores it.
func RunSetPINCommand(repositories *db.Repositories, email string, stdin *os.File, out io.Writer) error {
	return setPIN(repositories, email, func() (string, error) {
		return readPINNoEcho(stdin)
	}, out)
}

func setPIN(repositories *db.Repositories, email string, read func() (string, error), out io.Writer) error {
	auth := services.NewAuthService(repositories.Users)
	user, err := findUserByEmail(auth, email)
	if err != nil {
		return err
	}

	pin, err := promptNewPIN(read, out)
	if err != nil {
		return err
	}
	if _, err := services.ValidatePIN(pin); err != nil {
		return err
	}
	if err := auth.SetPIN(user.ID, pin); err != nil {
		return fmt.Errorf("update user pin: %w", err)
	}

	fmt.Fprintf(out, "PIN updated for %s\n", user.Email)
	return nil
}

func findUserByEmail(auth *services.AuthService, email string) (models.User, error) {
	user, err := auth.FindByEmail(email)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		return models.User{}, fmt.Errorf("invalid email address %q", email)
	case errors.Is(err, models.ErrNotFound):
		return models.User{}, fmt.Errorf("user %s not found", services.NormalizeAuthEmail(email))
	case err != nil:
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func generatePIN() (string, error) {
	return security.RandomPIN(pinLength)
}
