// Package secret stores, retrieves, and deletes secrets through a pluggable
// Provider and resolves secret references embedded in environment values.
//
// A reference wraps a service/account pair in a configurable prefix and
// suffix (defaults "$(taemno os://" and ")"):
//
//	DATABASE_URL=postgres://app:$(taemno os://postgres/app)@db:5432/app
//
// ResolveEnvironment replaces every reference with the secret it names;
// VerifyEnvironment reports the references whose secrets are absent without
// retrieving anything. Both delegate storage to the injected Provider and
// keep no state between calls.
package secret
