// File: database/repository/admin/crud.go
package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookingsite/database"
	"bookingsite/models"
)

// normalizeEmail is the stored and queried form of an admin email. Records
// written by hand must use it to match.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAllowed filters on the email field, so records created by hand with any
// document id still count. Matching ignores case and surrounding space.
func (r *storeAdminRepo) IsAllowed(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	docs, err := r.store.Query(ctx, Collection, database.Query{Limit: 1}.Where("email", email))
	if err != nil {
		return false, fmt.Errorf("failed to check admin allow-list: %w", err)
	}
	return len(docs) > 0, nil
}

// Add registers an email, using the normalised email as the document id so it is idempotent.
func (r *storeAdminRepo) Add(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("admin email is required")
	}
	record := models.AdminRecord{Email: email, CreatedAt: time.Now().UTC()}
	if err := r.store.Put(ctx, Collection, email, record.Fields()); err != nil {
		return fmt.Errorf("failed to add admin %s: %w", email, err)
	}
	return nil
}

func (r *storeAdminRepo) Remove(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	docs, err := r.store.Query(ctx, Collection, database.Query{}.Where("email", email))
	if err != nil {
		return fmt.Errorf("failed to look up admin %s: %w", email, err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("admin %s: %w", email, database.ErrNotFound)
	}
	for _, doc := range docs {
		if err := r.store.Delete(ctx, Collection, doc.ID); err != nil && !errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("failed to remove admin %s: %w", email, err)
		}
	}
	return nil
}
