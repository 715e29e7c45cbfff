// Package firebase initialises the Firebase app shared by Firestore and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"

	"linkup/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app from config.
// An empty credentials path falls back to application default credentials.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("default_credentials", cfg.CredentialsPath == ""),
	)

	return app, nil
}

// NewMessagingClient returns the Cloud Messaging client of the app
func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// NewFirestoreClient returns the Firestore client of the app, closed on stop
func NewFirestoreClient(ctx context.Context, lc fx.Lifecycle, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewApp,
		NewMessagingClient,
		NewFirestoreClient,
	),
)
