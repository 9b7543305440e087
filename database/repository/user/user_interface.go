package userRepo

import (
	"bookingsite/database"
	"bookingsite/models"
	"context"
)

const Collection = "users"

// UserRepository defines credential lookups for the password identity provider.
type UserRepository interface {
	// GetByEmail returns database.ErrNotFound (wrapped) for unknown emails.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create stores a new user; the password must already be hashed.
	Create(ctx context.Context, user models.User) (string, error)
}

type storeUserRepo struct {
	store database.DocumentStore
}

// NewUserRepo creates a UserRepository on the given store.
func NewUserRepo(store database.DocumentStore) UserRepository {
	return &storeUserRepo{store: store}
}

func Indexes() []database.IndexSpec {
	return []database.IndexSpec{
		{Collection: Collection, Name: "unique_email", Fields: []string{"email"}, Unique: true},
	}
}
