// utils/firebase.go
package utils

import (
	"bookingsite/config"
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseApp initializes the Firebase App from the configured service account.
func FirebaseApp(ctx context.Context) (*firebase.App, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	var fbConfig *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	return app, nil
}
