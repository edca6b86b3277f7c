package keyring

import (
	"context"
	"fmt"
	"sync"

	"github.com/taemno/taemno/secret"
)

// Memory is an in-memory secret.Provider. It backs the "memory" CLI
// backend and test doubles. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	items map[memoryKey]string
}

type memoryKey struct {
	service string
	account string
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{items: make(map[memoryKey]string)}
}

func (m *Memory) Set(_ context.Context, service, account, value string) error {
	if err := validateNames(service, account); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[memoryKey{service, account}] = value
	return nil
}

func (m *Memory) Get(_ context.Context, service, account string) (string, error) {
	if err := validateNames(service, account); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[memoryKey{service, account}]
	if !ok {
		return "", fmt.Errorf("keyring: %s/%s: %w", service, account, secret.ErrNotFound)
	}
	return value, nil
}

func (m *Memory) Exists(_ context.Context, service, account string) (bool, error) {
	if err := validateNames(service, account); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[memoryKey{service, account}]
	return ok, nil
}

func (m *Memory) Delete(_ context.Context, service, account string) error {
	if err := validateNames(service, account); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memoryKey{service, account}
	if _, ok := m.items[key]; !ok {
		return fmt.Errorf("keyring: %s/%s: %w", service, account, secret.ErrNotFound)
	}
	delete(m.items, key)
	return nil
}
