package models

import "strings"

// UserType represents the role of a user
type UserType string

const (
	UserTypeTourist  UserType = "tourist"
	UserTypeProvider UserType = "provider"
)

// Valid reports whether t is a known role
func (t UserType) Valid() bool {
	return t == UserTypeTourist || t == UserTypeProvider
}

// User represents an account in the marketplace
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"` // stored as entered
	Type     UserType `json:"type"`
	Phone    string   `json:"phone,omitempty"`
}

func (u User) IsProvider() bool { return u.Type == UserTypeProvider }

func (u User) IsTourist() bool { return u.Type == UserTypeTourist }

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
