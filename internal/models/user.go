package models

import "time"

const DefaultTimezone = "UTC"

type User struct {
	ID                       uint                     `gorm:"primaryKey" json:"user_id"`
	Email                    string                   `gorm:"not null" json:"email"`
	PINHash                  string                   `gorm:"column:pin_hash;not null" json:"-"`
	FirstName                string                   `gorm:"not null" json:"first_name"`
	LastName                 string                   `gorm:"not null" json:"last_name"`
	AccessibilityPreferences AccessibilityPreferences `gorm:"serializer:json;not null" json:"accessibility_preferences"`
	Timezone                 string                   `gorm:"not null" json:"timezone"`
	IsActive                 bool                     `gorm:"not null" json:"is_active"`
	CreatedAt                time.Time                `gorm:"not null" json:"created_at"`
	UpdatedAt                time.Time                `gorm:"not null" json:"updated_at"`
}

func (user User) FullName() string {
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}
