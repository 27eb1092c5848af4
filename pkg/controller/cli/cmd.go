package cli

import (
	"os"

	"github.com/m-mizutani/vitalsink/pkg/controller/cli/config"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func Run(argv []string) error {
	var (
		logLevel  string
		logFormat string

		sentryCfg config.Sentry
	)

	app := cli.App{
		Name:    "vitalsink",
		Usage:   "Append device vital-sign readings from Pub/Sub to BigQuery",
		Version: types.AppVersion,

		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (debug, info, warn, error)",
				EnvVars:     []string{"VITALSINK_LOG_LEVEL"},
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format (console, json, cloud)",
				EnvVars:     []string{"VITALSINK_LOG_FORMAT"},
				Destination: &logFormat,
				Value:       "console",
			},
		}, sentryCfg.Flags()...),

		Before: func(c *cli.Context) error {
			if err := logging.Configure(os.Stdout, logLevel, logFormat); err != nil {
				return err
			}
			return sentryCfg.Configure()
		},
		After: func(c *cli.Context) error {
			sentryCfg.Flush()
			return nil
		},

		Commands: []*cli.Command{
			cmdServe(),
			cmdFunction(),
			cmdSubscribe(),
			cmdPublish(),
		},
	}

	if err := app.Run(argv); err != nil {
		logging.Default().Error("exit with failure", "err", err)
		return err
	}

	return nil
}
