package store

import "testing"

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok := kv.Get("language"); ok {
		t.Fatal("expected empty storage to report absence")
	}

	kv.Set("language", "kg")
	v, ok := kv.Get("language")
	if !ok || v != "kg" {
		t.Fatalf("expected (kg, true), got (%q, %v)", v, ok)
	}

	kv.Set("language", "ru")
	if v, _ := kv.Get("language"); v != "ru" {
		t.Errorf("expected overwrite to win, got %q", v)
	}

	kv.Remove("language")
	if _, ok := kv.Get("language"); ok {
		t.Error("expected key to be gone after Remove")
	}

	// Removing an absent key is a no-op, not an error.
	kv.Remove("language")
}
