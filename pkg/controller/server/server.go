package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
	"github.com/m-mizutani/vitalsink/pkg/utils/errutil"
)

type config struct {
	validateGoogleIDToken bool
	audience              string
	serviceAccounts       []string
	jwksURL               string
}

type Option func(*config)

// WithGoogleIDTokenValidation requires push requests to carry a Google-signed ID token issued
// for audience. An empty audience skips the audience check.
func WithGoogleIDTokenValidation(audience string) Option {
	return func(cfg *config) {
		cfg.validateGoogleIDToken = true
		cfg.audience = audience
	}
}

// WithServiceAccount restricts the email claim of the ID token. It can be given several times.
func WithServiceAccount(email string) Option {
	return func(cfg *config) {
		cfg.serviceAccounts = append(cfg.serviceAccounts, email)
	}
}

func withJWKSURL(url string) Option {
	return func(cfg *config) {
		cfg.jwksURL = url
	}
}

func New(uc interfaces.UseCases, options ...Option) http.Handler {
	cfg := config{jwksURL: googleJWKSURL}
	for _, opt := range options {
		opt(&cfg)
	}

	route := chi.NewRouter()
	route.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK:" + types.AppVersion))
	})
	route.Route("/pubsub", func(r chi.Router) {
		r.Use(logger)
		if cfg.validateGoogleIDToken {
			r.Use(authGoogleIDToken(newCachedKeySet(cfg.jwksURL), cfg.audience, cfg.serviceAccounts))
		}

		r.Post("/", handlePush(uc))
	})

	return route
}

func handleError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var xErr types.Error
	if errors.As(err, &xErr) {
		code = xErr.Code()
	}

	http.Error(w, err.Error(), code)
}

// handlePush answers 2xx to ack the message. Any other status makes Pub/Sub redeliver it.
func handlePush(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := model.NewPushRequest(r)
		if err != nil {
			handleError(w, err)
			return
		}

		var pushEmail string
		if claims := ctxutil.GoogleIDToken(r.Context()); claims != nil {
			pushEmail, _ = claims["email"].(string)
		}
		recordDelivery(r.Context(), req, pushEmail)

		ctx := ctxutil.WithLogAttrs(r.Context(),
			"message_id", req.Message.MessageID,
			"subscription", req.Subscription,
		)

		if err := uc.HandleMessage(ctx, &req.Message); err != nil {
			errutil.Handle(ctx, "failed to handle pushed message", err)
			handleError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
