package auth

import "context"

// CredentialStorer defines the contract for durable session storage. The
// three entries (access token, refresh token, serialized user record) are
// stored independently; SetMany must replace its entries atomically.
type CredentialStorer interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, entries map[string]string) error
	Clear(ctx context.Context) error
}

// TokenRevoker defines the contract for any component that can tell the
// backend a refresh token is no longer in use.
type TokenRevoker interface {
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
