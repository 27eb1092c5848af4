package server

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

type middlewareFunc func(next http.Handler) http.Handler

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

func trimToken(token string) string {
	e := min(len(token), 8)
	return token[:e] + "..."
}

// keySet returns the JWK set that signs Google ID tokens.
type keySet func(ctx context.Context) (jwk.Set, error)

// newCachedKeySet registers url once. The set is fetched on first use and then refreshed in the
// background as its cache headers allow, so push requests do not hit the certificate endpoint.
func newCachedKeySet(url string) keySet {
	cache := jwk.NewCache(context.Background())
	if err := cache.Register(url); err != nil {
		return func(ctx context.Context) (jwk.Set, error) {
			return nil, goerr.Wrap(err, "failed to register JWK set URL").With("url", url)
		}
	}

	return func(ctx context.Context) (jwk.Set, error) {
		set, err := cache.Get(ctx, url)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch JWK set").With("url", url)
		}
		return set, nil
	}
}

func validateGoogleIDToken(ctx context.Context, keys keySet, authHdr, audience string) (map[string]any, error) {
	hdr := strings.SplitN(authHdr, " ", 2)

	// Skip if not Bearer token
	if len(hdr) != 2 || hdr[0] != "Bearer" {
		return nil, nil
	}

	set, err := keys(ctx)
	if err != nil {
		return nil, err
	}

	parseOptions := []jwt.ParseOption{jwt.WithKeySet(set)}
	if audience != "" {
		parseOptions = append(parseOptions, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseString(hdr[1], parseOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse JWT token as Google ID Token").With("token", trimToken(hdr[1]))
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert JWT token to map").With("token", trimToken(hdr[1]))
	}

	return claims, nil
}

// authGoogleIDToken rejects requests that are not signed by a push subscription's service
// account.
func authGoogleIDToken(keys keySet, audience string, serviceAccounts []string) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validateGoogleIDToken(r.Context(), keys, r.Header.Get("Authorization"), audience)
			if err != nil {
				ctxutil.Logger(r.Context()).Warn("invalid Google ID token", "err", err)
			}
			if claims == nil {
				handleError(w, types.ErrForbidden)
				return
			}

			if len(serviceAccounts) > 0 {
				email, _ := claims["email"].(string)
				if !slices.Contains(serviceAccounts, email) {
					ctxutil.Logger(r.Context()).Warn("unexpected service account", "email", email)
					handleError(w, types.ErrForbidden)
					return
				}
			}

			r = r.WithContext(ctxutil.WithGoogleIDToken(r.Context(), claims))
			next.ServeHTTP(w, r)
		})
	}
}
