package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "resurs.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store
}

func TestJSONStore_SetGet(t *testing.T) {
	store := newTestJSONStore(t)

	if _, ok, err := store.Get("ia_resource_user"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set("ia_resource_user", []byte(`{"name":"Анна"}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	raw, ok, err := store.Get("ia_resource_user")
	if err != nil || !ok {
		t.Fatalf("expected stored key, got ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"name":"Анна"}` {
		t.Errorf("expected stored value, got %s", raw)
	}
}

func TestJSONStore_PersistsAcrossInstances(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Set("ia_resource_moods", []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	raw, ok, err := reopened.Get("ia_resource_moods")
	if err != nil || !ok {
		t.Fatalf("expected key after reload, got ok=%v err=%v", ok, err)
	}
	if string(raw) != `[]` {
		t.Errorf("expected [], got %s", raw)
	}

	info, err := os.Stat(store.GetConfigPath())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestJSONStore_LastWriteWins(t *testing.T) {
	store := newTestJSONStore(t)
	_ = store.Set("k", []byte(`1`))
	_ = store.Set("k", []byte(`2`))

	raw, _, _ := store.Get("k")
	if string(raw) != "2" {
		t.Errorf("expected last write, got %s", raw)
	}
}

func TestJSONStore_RejectsInvalidJSON(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Set("k", []byte(`{broken`)); err == nil {
		t.Error("expected error for invalid JSON value")
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	store := newTestJSONStore(t)
	if err := NewJSONStore(store.GetConfigPath()).Init(); err == nil {
		t.Error("expected error when initializing an existing store")
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading a missing store")
	}
	if _, _, err := store.Get("k"); err == nil {
		t.Error("expected error from Get before Load")
	}
}

func TestJSONStore_Keys(t *testing.T) {
	store := newTestJSONStore(t)
	_ = store.Set("b", []byte(`1`))
	_ = store.Set("a", []byte(`1`))

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected [a b], got %v", keys)
	}
}

func TestJSONStore_FailedSaveLeavesPreviousValue(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Set("ia_resource_user", []byte(`{"name":"Анна"}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// A directory in place of the temp file makes the write fail
	tmp := store.GetConfigPath() + ".tmp"
	if err := os.Mkdir(tmp, 0700); err != nil {
		t.Fatalf("failed to block temp file: %v", err)
	}
	if err := store.Set("ia_resource_user", []byte(`{"name":"Оля"}`)); err == nil {
		t.Fatal("expected Set to fail")
	}
	if err := store.Set("ia_resource_moods", []byte(`[]`)); err == nil {
		t.Fatal("expected Set to fail")
	}
	if err := os.Remove(tmp); err != nil {
		t.Fatalf("failed to unblock temp file: %v", err)
	}

	raw, _, err := store.Get("ia_resource_user")
	if err != nil || string(raw) != `{"name":"Анна"}` {
		t.Errorf("expected previous value after failed save, got %s (%v)", raw, err)
	}
	if _, ok, _ := store.Get("ia_resource_moods"); ok {
		t.Error("key from a failed save should be absent")
	}

	// The next successful write must not carry the failed values to disk
	if err := store.Set("ia_resource_achievements", []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	raw, _, _ = reopened.Get("ia_resource_user")
	if string(raw) != `{"name":"Анна"}` {
		t.Errorf("expected previous value on disk, got %s", raw)
	}
	if _, ok, _ := reopened.Get("ia_resource_moods"); ok {
		t.Error("failed key was written to disk")
	}
}
