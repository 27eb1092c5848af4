package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/vitalsink/pkg/controller/cli/config"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
	"github.com/m-mizutani/vitalsink/pkg/utils/errutil"
	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdSubscribe() *cli.Command {
	var (
		subscriberCfg config.Subscriber
		pubsubCfg     config.PubSub
		tableStoreCfg config.TableStore
	)

	flags := subscriberCfg.Flags()
	flags = append(flags, pubsubCfg.Flags()...)
	flags = append(flags, tableStoreCfg.Flags()...)

	return &cli.Command{
		Name:  "subscribe",
		Usage: "Pull readings from a Pub/Sub subscription",
		Flags: flags,

		Action: func(c *cli.Context) error {
			logging.Default().Info("starting subscribe",
				"subscriber", &subscriberCfg,
				"pubsub", &pubsubCfg,
				"table_store", &tableStoreCfg,
			)

			table, err := tableStoreCfg.Table()
			if err != nil {
				return err
			}
			tableStore, closeStore, err := tableStoreCfg.Configure(c.Context)
			if err != nil {
				return err
			}
			defer closeStore()

			client, err := pubsubCfg.Configure(c.Context)
			if err != nil {
				return err
			}
			defer client.Close()

			uc := usecase.New(
				usecase.WithTableStore(tableStore),
				usecase.WithTable(table),
			)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return client.Receive(ctx, subscriberCfg.Subscription(), subscriberCfg.MaxOutstanding(), func(ctx context.Context, msg *model.PubSubMessage) error {
				if err := uc.HandleMessage(ctx, msg); err != nil {
					errutil.Handle(ctx, "failed to handle pulled message", err)
					return err
				}
				return nil
			})
		},
	}
}
