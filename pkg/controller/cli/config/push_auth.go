package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/controller/server"
	"github.com/urfave/cli/v2"
)

// PushAuth configures Google ID token verification on the push endpoint.
type PushAuth struct {
	validateIDToken bool
	audience        string
	serviceAccounts cli.StringSlice
}

func (x *PushAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "validate-id-token",
			Usage:       "Require a Google ID token on push requests",
			EnvVars:     []string{"VITALSINK_VALIDATE_ID_TOKEN"},
			Destination: &x.validateIDToken,
		},
		&cli.StringFlag{
			Name:        "audience",
			Usage:       "Expected audience of the push ID token",
			EnvVars:     []string{"VITALSINK_AUDIENCE"},
			Destination: &x.audience,
		},
		&cli.StringSliceFlag{
			Name:        "service-account",
			Usage:       "Allowed service account email of the push subscription",
			EnvVars:     []string{"VITALSINK_SERVICE_ACCOUNT"},
			Destination: &x.serviceAccounts,
		},
	}
}

// ServerOptions fails when validation is enabled with neither an audience nor a service account,
// because any Google-signed ID token would then be accepted.
func (x *PushAuth) ServerOptions() ([]server.Option, error) {
	if !x.validateIDToken {
		return nil, nil
	}

	accounts := x.serviceAccounts.Value()
	if x.audience == "" && len(accounts) == 0 {
		return nil, goerr.New("--validate-id-token requires --audience or --service-account")
	}

	options := []server.Option{server.WithGoogleIDTokenValidation(x.audience)}
	for _, email := range accounts {
		options = append(options, server.WithServiceAccount(email))
	}
	return options, nil
}

func (x *PushAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("validate_id_token", x.validateIDToken),
		slog.String("audience", x.audience),
		slog.Any("service_accounts", x.serviceAccounts.Value()),
	)
}
