package models

import (
	"time"
)

// User is a known visitor together with their display preferences.
// A nil Locale means the user has no language preference.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Locale    *string   `json:"locale"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}

func localePtr(s string) *string {
	return &s
}

// DefaultUsers are seeded into an empty users table.
func DefaultUsers() []User {
	return []User{
		{ID: 1, Name: "Balou", Locale: localePtr("fr"), Timezone: "Europe/Paris"},
		{ID: 2, Name: "Beyonce", Locale: localePtr("en"), Timezone: "US/Central"},
		{ID: 3, Name: "Spock", Locale: localePtr("kg"), Timezone: "Vulcan"},
		{ID: 4, Name: "Teletubby", Locale: nil, Timezone: "Europe/London"},
	}
}
