package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/taemno/taemno/secret"
)

// environFromProcess snapshots the process environment in order.
func environFromProcess() secret.Environment {
	environ := os.Environ()
	env := make(secret.Environment, 0, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env = append(env, secret.Var{Key: key, Value: value})
	}
	return env
}

// loadEnvFile reads a KEY=value file, preserving line order. Blank lines
// and lines starting with # are skipped; everything after the first = is
// the value, verbatim.
func loadEnvFile(path string) (secret.Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var env secret.Environment
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%s:%d: expected KEY=value", path, line)
		}
		env = append(env, secret.Var{Key: strings.TrimSpace(key), Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}
