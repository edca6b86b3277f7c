package keyring

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/taemno/taemno/secret"
)

// ErrUnsupportedPlatform indicates no secure-storage backend exists for the
// requested platform.
var ErrUnsupportedPlatform = errors.New("keyring: unsupported platform")

// Platform identifies an operating system with a native secure store.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// CurrentPlatform returns the Platform for the running operating system.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// ForPlatform returns the secure-storage provider for p. Platforms without
// a native secure store fail fast with ErrUnsupportedPlatform.
func ForPlatform(p Platform) (secret.Provider, error) {
	switch p {
	case PlatformDarwin, PlatformLinux, PlatformWindows:
		return &systemProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
}

// System returns the secure-storage provider for the current platform.
func System() (secret.Provider, error) {
	return ForPlatform(CurrentPlatform())
}

// systemProvider adapts zalando/go-keyring, which talks to the Keychain,
// Secret Service, or Credential Manager depending on the platform.
type systemProvider struct{}

func (*systemProvider) Set(ctx context.Context, service, account, value string) error {
	if err := validateNames(service, account); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := gokeyring.Set(service, account, value); err != nil {
		return fmt.Errorf("keyring: set %s/%s: %w", service, account, err)
	}
	return nil
}

func (*systemProvider) Get(ctx context.Context, service, account string) (string, error) {
	if err := validateNames(service, account); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, err := gokeyring.Get(service, account)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", fmt.Errorf("keyring: %s/%s: %w", service, account, secret.ErrNotFound)
		}
		return "", fmt.Errorf("keyring: get %s/%s: %w", service, account, err)
	}
	return value, nil
}

func (p *systemProvider) Exists(ctx context.Context, service, account string) (bool, error) {
	_, err := p.Get(ctx, service, account)
	switch {
	case errors.Is(err, secret.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

func (*systemProvider) Delete(ctx context.Context, service, account string) error {
	if err := validateNames(service, account); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := gokeyring.Delete(service, account); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return fmt.Errorf("keyring: %s/%s: %w", service, account, secret.ErrNotFound)
		}
		return fmt.Errorf("keyring: delete %s/%s: %w", service, account, err)
	}
	return nil
}
