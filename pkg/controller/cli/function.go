package cli

import (
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/controller/cli/config"
	"github.com/m-mizutani/vitalsink/pkg/controller/function"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdFunction() *cli.Command {
	var (
		host string
		port string

		tableStoreCfg config.TableStore
	)

	return &cli.Command{
		Name:  "function",
		Usage: "Serve the CloudEvent function " + types.FunctionName + " with the Functions Framework",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "host",
				Usage:       "Listen host",
				EnvVars:     []string{"VITALSINK_HOST"},
				Destination: &host,
			},
			&cli.StringFlag{
				Name:        "port",
				Usage:       "Listen port",
				Aliases:     []string{"p"},
				EnvVars:     []string{"PORT"},
				Destination: &port,
				Value:       "8080",
			},
		}, tableStoreCfg.Flags()...),

		Action: func(c *cli.Context) error {
			logging.Default().Info("starting function", "host", host, "port", port, "table_store", &tableStoreCfg)

			table, err := tableStoreCfg.Table()
			if err != nil {
				return err
			}
			tableStore, closeStore, err := tableStoreCfg.Configure(c.Context)
			if err != nil {
				return err
			}
			defer closeStore()

			function.Register(usecase.New(
				usecase.WithTableStore(tableStore),
				usecase.WithTable(table),
			))

			if err := funcframework.StartHostPort(host, port); err != nil {
				return goerr.Wrap(err, "failed to start Functions Framework").With("port", port)
			}

			return nil
		},
	}
}
