// File: database/repository/admin/interface.go
package adminRepo

import (
	"bookingsite/database"
	"context"
)

const Collection = "admins"

// AdminRepository is the admin allow-list. A record's presence is the whole grant.
type AdminRepository interface {
	IsAllowed(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, email string) error
	// Remove revokes every record carrying the email.
	Remove(ctx context.Context, email string) error
}

type storeAdminRepo struct {
	store database.DocumentStore
}

func NewAdminRepo(store database.DocumentStore) AdminRepository {
	return &storeAdminRepo{store: store}
}

func Indexes() []database.IndexSpec {
	return []database.IndexSpec{
		{Collection: Collection, Name: "unique_email", Fields: []string{"email"}, Unique: true},
	}
}
