// File: database/repository/user/userCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"bookingsite/database"
	"bookingsite/models"
)

func (r *storeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := r.store.Query(ctx, Collection, database.Query{Limit: 1}.Where("email", email))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("user with email %s: %w", email, database.ErrNotFound)
	}

	var user models.User
	if err := models.DecodeDocument(docs[0].Data, &user); err != nil {
		return nil, fmt.Errorf("error decoding user %s: %w", docs[0].ID, err)
	}
	user.ID = docs[0].ID
	return &user, nil
}

func (r *storeUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	data := map[string]any{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"createdAt":    user.CreatedAt,
	}
	id, err := r.store.Add(ctx, Collection, data)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}
