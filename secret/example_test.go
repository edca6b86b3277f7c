package secret_test

import (
	"context"
	"fmt"

	"github.com/taemno/taemno/keyring"
	"github.com/taemno/taemno/secret"
)

func ExampleStore_ResolveEnvironment() {
	ctx := context.Background()
	store := secret.NewStore(keyring.NewMemory(), secret.DefaultSyntax())

	_ = store.Set(ctx, "postgres", "app", "s3cret")

	resolved, err := store.ResolveEnvironment(ctx, secret.Environment{
		{Key: "DATABASE_URL", Value: "postgres://app:$(taemno os://postgres/app)@db:5432/app"},
	})
	if err != nil {
		fmt.Println("resolve:", err)
		return
	}
	fmt.Println(resolved[0].Value)
	// Output: postgres://app:s3cret@db:5432/app
}

func ExampleStore_VerifyEnvironment() {
	ctx := context.Background()
	store := secret.NewStore(keyring.NewMemory(), secret.DefaultSyntax())

	result, err := store.VerifyEnvironment(ctx, secret.Environment{
		{Key: "API_TOKEN", Value: "$(taemno os://api/token)"},
	})
	if err != nil {
		fmt.Println("verify:", err)
		return
	}
	for _, m := range result.Missing {
		fmt.Printf("%s: %s/%s\n", m.Key, m.Service, m.Account)
	}
	// Output: API_TOKEN: api/token
}
