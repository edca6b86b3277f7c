// Package keyring provides secret.Provider implementations backed by the
// operating system's native secure storage: the macOS Keychain, the
// freedesktop Secret Service on Linux, and the Windows Credential Manager.
// Backends are selected once, at the composition point, through ForPlatform
// or System; an in-memory provider backs tests and ephemeral use.
package keyring
