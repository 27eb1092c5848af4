package ctxutil

import "context"

type ctxAuthKey string

const ctxAuthGoogleIDToken = ctxAuthKey("google_id_token")

func WithGoogleIDToken(ctx context.Context, token map[string]any) context.Context {
	return context.WithValue(ctx, ctxAuthGoogleIDToken, token)
}

func GoogleIDToken(ctx context.Context) map[string]any {
	token, ok := ctx.Value(ctxAuthGoogleIDToken).(map[string]any)
	if !ok {
		return nil
	}
	return token
}
