package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/taemno/taemno/secret"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, `# comment
DATABASE_URL=postgres://app:$(taemno os://postgres/app)@db/app

API_TOKEN=$(taemno os://api/token)
EMPTY=
WITH_EQUALS=a=b=c
`)
	env, err := loadEnvFile(path)
	if err != nil {
		t.Fatalf("loadEnvFile() error = %v", err)
	}
	want := secret.Environment{
		{Key: "DATABASE_URL", Value: "postgres://app:$(taemno os://postgres/app)@db/app"},
		{Key: "API_TOKEN", Value: "$(taemno os://api/token)"},
		{Key: "EMPTY", Value: ""},
		{Key: "WITH_EQUALS", Value: "a=b=c"},
	}
	if !reflect.DeepEqual(env, want) {
		t.Fatalf("loadEnvFile() = %#v, want %#v", env, want)
	}
}

func TestLoadEnvFile_MalformedLine(t *testing.T) {
	path := writeFile(t, "NOT A PAIR\n")

	if _, err := loadEnvFile(path); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if _, err := loadEnvFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEnvironFromProcess(t *testing.T) {
	t.Setenv("TAEMNO_TEST_VAR", "present")

	env := environFromProcess()
	if v, ok := env.Lookup("TAEMNO_TEST_VAR"); !ok || v != "present" {
		t.Fatalf("Lookup(TAEMNO_TEST_VAR) = %q, %v", v, ok)
	}
}
