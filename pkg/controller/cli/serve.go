package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/controller/cli/config"
	"github.com/m-mizutani/vitalsink/pkg/controller/server"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

func cmdServe() *cli.Command {
	var (
		addr string

		pushAuthCfg   config.PushAuth
		tableStoreCfg config.TableStore
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Aliases:     []string{"a"},
			EnvVars:     []string{"VITALSINK_ADDR"},
			Destination: &addr,
			Value:       "127.0.0.1:8080",
		},
	}
	flags = append(flags, pushAuthCfg.Flags()...)
	flags = append(flags, tableStoreCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Usage:   "Start HTTP server for Pub/Sub push subscriptions",
		Aliases: []string{"s"},
		Flags:   flags,

		Action: func(c *cli.Context) error {
			logging.Default().Info("starting serve",
				"addr", addr,
				"push_auth", &pushAuthCfg,
				"table_store", &tableStoreCfg,
			)

			serverOptions, err := pushAuthCfg.ServerOptions()
			if err != nil {
				return err
			}

			table, err := tableStoreCfg.Table()
			if err != nil {
				return err
			}
			tableStore, closeStore, err := tableStoreCfg.Configure(c.Context)
			if err != nil {
				return err
			}
			defer closeStore()

			uc := usecase.New(
				usecase.WithTableStore(tableStore),
				usecase.WithTable(table),
			)

			s := &http.Server{
				Addr:              addr,
				ReadHeaderTimeout: 3 * time.Second,
				Handler:           server.New(uc, serverOptions...),
			}

			errCh := make(chan error, 1)

			go func() {
				if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to listen")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server").With("signal", sig)
				}

			case err := <-errCh:
				return err
			}

			return nil
		},
	}
}
