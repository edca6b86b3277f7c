package secret

import "context"

// Provider is the capability contract implemented by each secure-storage
// backend.
//
// Contract:
//   - Implementations must be safe for concurrent use and must not log
//     secret values.
//   - Get returns an error wrapping ErrNotFound when no secret exists for
//     (service, account); any other error is a backend failure.
//   - Exists reports absence as (false, nil). A non-nil error always means
//     the backend itself failed, never that the secret is missing.
type Provider interface {
	Set(ctx context.Context, service, account, secret string) error
	Get(ctx context.Context, service, account string) (string, error)
	Exists(ctx context.Context, service, account string) (bool, error)
	Delete(ctx context.Context, service, account string) error
}
