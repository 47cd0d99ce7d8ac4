package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePINHash(userID uint, pinHash string) error
}

type RegistrationInput struct {
	Email                    string                           `json:"email"`
	PIN                      string                           `json:"pin"`
	Name                     string                           `json:"name"`
	FirstName                string                           `json:"first_name"`
	LastName                 string                           `json:"last_name"`
	Timezone                 string                           `json:"timezone"`
	AccessibilityPreferences *models.AccessibilityPreferences `json:"accessibility_preferences"`
}

type AuthService struct {
	users AuthUserRepository
	now   func() time.Time
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, now: utcNow}
}

func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	pin, err := ValidatePIN(input.PIN)
	if err != nil {
		return models.User{}, err
	}

	firstName, lastName := SplitFullName(input.Name)
	if strings.TrimSpace(input.FirstName) != "" {
		firstName = strings.TrimSpace(input.FirstName)
		lastName = strings.TrimSpace(input.LastName)
	}
	if firstName == "" {
		return models.User{}, ErrNameRequired
	}

	timezone, err := NormalizeTimezone(input.Timezone)
	if err != nil {
		return models.User{}, err
	}
	if timezone == "" {
		timezone = models.DefaultTimezone
	}

	preferences := models.DefaultAccessibilityPreferences()
	if input.AccessibilityPreferences != nil {
		preferences, err = NormalizeAccessibilityPreferences(*input.AccessibilityPreferences)
		if err != nil {
			return models.User{}, err
		}
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	pinHash, err := HashPIN(pin)
	if err != nil {
		return models.User{}, err
	}

	now := service.now()
	user := models.User{
		Email:                    email,
		PINHash:                  pinHash,
		FirstName:                firstName,
		LastName:                 lastName,
		AccessibilityPreferences: preferences,
		Timezone:                 timezone,
		IsActive:                 true,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, models.ErrConstraintViolation) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks the PIN before the active flag so that an inactive
// account is only revealed to a caller who knows its PIN.
func (service *AuthService) Authenticate(emailRaw string, pinRaw string) (models.User, error) {
	email, pin, err := NormalizeCredentialsInput(emailRaw, pinRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(pin)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AuthService) FindByEmail(emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AuthService) SetPIN(userID uint, pinRaw string) error {
	pin, err := ValidatePIN(pinRaw)
	if err != nil {
		return err
	}
	pinHash, err := HashPIN(pin)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePINHash(userID, pinHash); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
