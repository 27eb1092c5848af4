package cli

import (
	"fmt"

	"github.com/m-mizutani/vitalsink/pkg/controller/cli/config"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
	"github.com/urfave/cli/v2"
)

func cmdPublish() *cli.Command {
	var (
		topic   string
		reading model.Reading

		pubsubCfg config.PubSub
	)

	return &cli.Command{
		Name:  "publish",
		Usage: "Publish one reading to a Pub/Sub topic, as a device would",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "topic",
				Usage:       "Pub/Sub topic ID",
				EnvVars:     []string{"VITALSINK_TOPIC"},
				Destination: &topic,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Name of the person the reading belongs to",
				Aliases:     []string{"n"},
				Destination: &reading.Name,
				Required:    true,
			},
			&cli.Float64Flag{
				Name:        "temperature",
				Usage:       "Body temperature",
				Destination: &reading.Temperature,
				Required:    true,
			},
			&cli.Int64Flag{
				Name:        "heart-rate",
				Usage:       "Heart rate",
				Destination: &reading.HeartRate,
				Required:    true,
			},
		}, pubsubCfg.Flags()...),

		Action: func(c *cli.Context) error {
			client, err := pubsubCfg.Configure(c.Context)
			if err != nil {
				return err
			}
			defer client.Close()

			publisher := client.Publisher(topic)
			defer publisher.Stop()

			uc := usecase.New(usecase.WithPublisher(publisher))
			msgID, err := uc.PublishReading(c.Context, reading)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, msgID)
			return nil
		},
	}
}
