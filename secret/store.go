package secret

import "context"

// Store is the facade over a Provider: direct secret operations plus
// environment resolution and verification. The provider is injected at
// construction; Store holds no other state and never caches secrets or
// reference results between calls.
type Store struct {
	provider Provider
	resolver *Resolver
	verifier *Verifier
}

// NewStore creates a Store backed by provider, using syntax to recognize
// references. The zero Syntax means DefaultSyntax.
func NewStore(provider Provider, syntax Syntax) *Store {
	return &Store{
		provider: provider,
		resolver: NewResolver(provider, syntax),
		verifier: NewVerifier(provider, syntax),
	}
}

// Set stores value under (service, account).
func (s *Store) Set(ctx context.Context, service, account, value string) error {
	return s.provider.Set(ctx, service, account, value)
}

// Get retrieves the secret stored under (service, account).
func (s *Store) Get(ctx context.Context, service, account string) (string, error) {
	return s.provider.Get(ctx, service, account)
}

// Exists reports whether a secret is stored under (service, account).
func (s *Store) Exists(ctx context.Context, service, account string) (bool, error) {
	return s.provider.Exists(ctx, service, account)
}

// Delete removes the secret stored under (service, account).
func (s *Store) Delete(ctx context.Context, service, account string) error {
	return s.provider.Delete(ctx, service, account)
}

// ResolveEnvironment substitutes every reference in env with its secret.
func (s *Store) ResolveEnvironment(ctx context.Context, env Environment) (Environment, error) {
	return s.resolver.ResolveEnvironment(ctx, env)
}

// ResolveMap substitutes every reference in the values of input.
func (s *Store) ResolveMap(ctx context.Context, input map[string]string) (map[string]string, error) {
	return s.resolver.ResolveMap(ctx, input)
}

// VerifyEnvironment reports the references in env whose secrets are absent.
func (s *Store) VerifyEnvironment(ctx context.Context, env Environment) (VerificationResult, error) {
	return s.verifier.VerifyEnvironment(ctx, env)
}
