package secret

import (
	"context"
	"errors"
	"testing"
)

// Instrument runs against the global otel providers, which are no-ops in
// tests; these checks cover forwarding, not exporter output.

func TestInstrument_ForwardsOperations(t *testing.T) {
	provider := &stubProvider{}
	wrapped := Instrument(provider)
	ctx := context.Background()

	if err := wrapped.Set(ctx, "svc", "acct", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := wrapped.Get(ctx, "svc", "acct")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "value" {
		t.Fatalf("Get() = %q, want %q", got, "value")
	}
	present, err := wrapped.Exists(ctx, "svc", "acct")
	if err != nil || !present {
		t.Fatalf("Exists() = %v, %v", present, err)
	}
	if err := wrapped.Delete(ctx, "svc", "acct"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if provider.setCalls != 1 || provider.getCalls != 1 || provider.existsCalls != 1 || provider.deleteCalls != 1 {
		t.Fatalf("calls not forwarded exactly once: %#v", provider)
	}
}

func TestInstrument_ErrorsPassThrough(t *testing.T) {
	provider := &stubProvider{getErr: errors.New("backend down")}
	wrapped := Instrument(provider)

	_, err := wrapped.Get(context.Background(), "svc", "acct")
	if !errors.Is(err, provider.getErr) {
		t.Fatalf("Get() error = %v, want wrapped backend error", err)
	}
}
