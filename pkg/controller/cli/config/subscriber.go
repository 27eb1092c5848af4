package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr"
	"github.com/urfave/cli/v2"
)

// Subscriber configures the pull delivery loop.
type Subscriber struct {
	subscription   string
	maxOutstanding int
}

func (x *Subscriber) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "subscription",
			Usage:       "Pub/Sub subscription ID to pull readings from",
			EnvVars:     []string{"VITALSINK_SUBSCRIPTION"},
			Destination: &x.subscription,
			Required:    true,
		},
		&cli.IntFlag{
			Name:        "max-outstanding",
			Usage:       "Maximum number of messages handled at once (1 or more)",
			EnvVars:     []string{"VITALSINK_MAX_OUTSTANDING"},
			Destination: &x.maxOutstanding,
			Value:       1,
			Action: func(c *cli.Context, v int) error {
				if v < 1 {
					return goerr.New("--max-outstanding must be 1 or more").With("max_outstanding", v)
				}
				return nil
			},
		},
	}
}

func (x *Subscriber) Subscription() string { return x.subscription }

func (x *Subscriber) MaxOutstanding() int { return x.maxOutstanding }

func (x *Subscriber) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("subscription", x.subscription),
		slog.Int("max_outstanding", x.maxOutstanding),
	)
}
