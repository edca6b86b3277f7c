package secret

import (
	"context"
	"strings"
)

// Resolver substitutes secret references in environment values with the
// secrets they name, fetching each through a Provider.
type Resolver struct {
	provider Provider
	matcher  *Matcher
}

// NewResolver creates a resolver using the given provider and syntax.
func NewResolver(provider Provider, syntax Syntax) *Resolver {
	return &Resolver{provider: provider, matcher: NewMatcher(syntax)}
}

// ResolveEnvironment resolves every reference in env and returns a new
// environment with the same keys in the same order. Values without
// references are copied through unchanged. If any secret cannot be
// retrieved, the whole call fails with a *ResolutionError naming the key
// and no partial environment is returned.
func (r *Resolver) ResolveEnvironment(ctx context.Context, env Environment) (Environment, error) {
	resolved := make(Environment, 0, len(env))
	for _, v := range env {
		value, err := r.resolveValue(ctx, v.Key, v.Value)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Var{Key: v.Key, Value: value})
	}
	return resolved, nil
}

// ResolveMap resolves each value of input. Keys are processed in lexical
// order so provider call order is deterministic.
func (r *Resolver) ResolveMap(ctx context.Context, input map[string]string) (map[string]string, error) {
	if input == nil {
		return nil, nil
	}
	resolved, err := r.ResolveEnvironment(ctx, EnvironmentFromMap(input))
	if err != nil {
		return nil, err
	}
	return resolved.Map(), nil
}

// ResolveValue resolves every reference in a single value.
func (r *Resolver) ResolveValue(ctx context.Context, value string) (string, error) {
	return r.resolveValue(ctx, "", value)
}

// resolveValue fetches each distinct reference in value once, in order of
// first appearance, and replaces every occurrence of its full match text.
func (r *Resolver) resolveValue(ctx context.Context, key, value string) (string, error) {
	matches, err := r.matcher.FindAll(value)
	if err != nil {
		return "", &ResolutionError{Key: key, Err: err}
	}
	if len(matches) == 0 {
		return value, nil
	}

	out := value
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, done := seen[m.Text]; done {
			continue
		}
		seen[m.Text] = struct{}{}

		resolved, err := r.provider.Get(ctx, m.Service, m.Account)
		if err != nil {
			return "", &ResolutionError{Key: key, Ref: m.Text, Err: err}
		}
		out = strings.ReplaceAll(out, m.Text, resolved)
	}
	return out, nil
}
