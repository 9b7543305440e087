package models

import "time"

// User is a credential record used by the password identity provider.
type User struct {
	ID           string    `mapstructure:"-" json:"id"`
	Email        string    `mapstructure:"email" json:"email"`
	PasswordHash string    `mapstructure:"passwordHash" json:"-"`
	CreatedAt    time.Time `mapstructure:"createdAt" json:"createdAt"`
}
