package keyring

import (
	"errors"
	"testing"
)

func TestForPlatform_Supported(t *testing.T) {
	for _, p := range []Platform{PlatformDarwin, PlatformLinux, PlatformWindows} {
		provider, err := ForPlatform(p)
		if err != nil {
			t.Fatalf("ForPlatform(%s) error = %v", p, err)
		}
		if provider == nil {
			t.Fatalf("ForPlatform(%s) = nil provider", p)
		}
	}
}

func TestForPlatform_Unsupported(t *testing.T) {
	_, err := ForPlatform("plan9")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("ForPlatform(plan9) error = %v, want ErrUnsupportedPlatform", err)
	}
}
