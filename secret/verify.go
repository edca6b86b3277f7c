package secret

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MissingSecret identifies a reference whose backing secret is absent.
type MissingSecret struct {
	Key     string
	Service string
	Account string
}

// VerificationResult reports the outcome of VerifyEnvironment. Success is
// true iff Missing is empty. Missing follows environment order, then left
// to right within each value.
type VerificationResult struct {
	Success bool
	Missing []MissingSecret
}

// existsParallelism bounds concurrent Exists calls during verification.
const existsParallelism = 4

// Verifier checks that every secret referenced by an environment is present
// in the backend, without retrieving any secret value.
type Verifier struct {
	provider Provider
	matcher  *Matcher
	limit    int
}

// NewVerifier creates a verifier using the given provider and syntax.
func NewVerifier(provider Provider, syntax Syntax) *Verifier {
	return &Verifier{provider: provider, matcher: NewMatcher(syntax), limit: existsParallelism}
}

type refKey struct {
	service string
	account string
}

type occurrence struct {
	key string
	ref refKey
}

// VerifyEnvironment checks every reference in env and reports the ones
// whose secrets are absent. Each distinct (service, account) pair is
// checked with exactly one Exists call; a missing secret is reported once
// per key it occurs under. env is never modified and no secret value is
// retrieved. A failing Exists aborts the whole call: a backend error is
// not a missing secret.
func (v *Verifier) VerifyEnvironment(ctx context.Context, env Environment) (VerificationResult, error) {
	// Scan phase: collect occurrences without touching the provider.
	var occurrences []occurrence
	var order []refKey
	seenOcc := make(map[occurrence]struct{})
	seenRef := make(map[refKey]struct{})
	for _, ev := range env {
		matches, err := v.matcher.FindAll(ev.Value)
		if err != nil {
			return VerificationResult{}, fmt.Errorf("secret: verify %s: %w", ev.Key, err)
		}
		for _, m := range matches {
			rk := refKey{service: m.Service, account: m.Account}
			occ := occurrence{key: ev.Key, ref: rk}
			if _, ok := seenOcc[occ]; ok {
				continue
			}
			seenOcc[occ] = struct{}{}
			occurrences = append(occurrences, occ)
			if _, ok := seenRef[rk]; !ok {
				seenRef[rk] = struct{}{}
				order = append(order, rk)
			}
		}
	}

	// Check phase: one Exists per distinct reference, fanned out. Results
	// land by index, so output order does not depend on completion order.
	present := make([]bool, len(order))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.limit)
	for i, rk := range order {
		g.Go(func() error {
			ok, err := v.provider.Exists(ctx, rk.service, rk.account)
			if err != nil {
				return fmt.Errorf("secret: verify %s/%s: %w", rk.service, rk.account, err)
			}
			present[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return VerificationResult{}, err
	}

	exists := make(map[refKey]bool, len(order))
	for i, rk := range order {
		exists[rk] = present[i]
	}

	var missing []MissingSecret
	for _, occ := range occurrences {
		if !exists[occ.ref] {
			missing = append(missing, MissingSecret{
				Key:     occ.key,
				Service: occ.ref.service,
				Account: occ.ref.account,
			})
		}
	}
	return VerificationResult{Success: len(missing) == 0, Missing: missing}, nil
}
