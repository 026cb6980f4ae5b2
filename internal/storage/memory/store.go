// Package memory is an in-process storage provider for tests.
package memory

import (
	"fmt"
	"sort"
	"sync"
)

type Store struct {
	mu     sync.Mutex
	values map[string][]byte
	loaded bool

	// FailGet and FailSet, while set, are returned by every matching call.
	FailGet error
	FailSet error
	// FailSetKey limits FailSet to one key when non-empty.
	FailSetKey string

	// Writes counts successful Set calls.
	Writes int
}

func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	return nil
}

func (s *Store) Load() error {
	return s.Init()
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailGet != nil {
		return nil, false, s.FailGet
	}
	raw, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *Store) Set(key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet != nil && (s.FailSetKey == "" || s.FailSetKey == key) {
		return s.FailSet
	}
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	value := make([]byte, len(raw))
	copy(value, raw)
	s.values[key] = value
	s.Writes++
	return nil
}

func (s *Store) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) GetConfigPath() string {
	return "memory"
}
