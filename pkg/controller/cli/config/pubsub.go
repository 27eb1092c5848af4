package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/vitalsink/pkg/infra/pubsub"
	"github.com/urfave/cli/v2"
)

type PubSub struct {
	projectID string
}

func (x *PubSub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pubsub-project",
			Usage:       "Project ID of the Pub/Sub topic or subscription",
			EnvVars:     []string{"VITALSINK_PUBSUB_PROJECT"},
			Destination: &x.projectID,
			Required:    true,
		},
	}
}

func (x *PubSub) Configure(ctx context.Context) (*pubsub.Client, error) {
	return pubsub.New(ctx, x.projectID)
}

func (x *PubSub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
	)
}
