package models

import "time"

// AdminRecord marks an email as allowed to use the admin surface.
type AdminRecord struct {
	Email     string    `mapstructure:"email" json:"email"`
	CreatedAt time.Time `mapstructure:"createdAt" json:"createdAt"`
}

func (a AdminRecord) Fields() map[string]any {
	return map[string]any{"email": a.Email, "createdAt": a.CreatedAt}
}
