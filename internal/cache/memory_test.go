package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	key := Key("Policy Number: POL-1", 25000)
	if _, found := c.Get(key); found {
		t.Error("expected miss before Set")
	}

	body := []byte(`{"recommendedRoute":"Standard"}`)
	if err := c.Set(key, body, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(got, body) {
		t.Errorf("expected %s, got %s", body, got)
	}
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	key := Key("short-lived", 25000)
	if err := c.Set(key, []byte("x"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("expected entry to expire")
	}
}

func TestMemory_DeleteAndClear(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	_ = c.Set(Key("a", 25000), []byte("a"), 0)
	_ = c.Set(Key("b", 25000), []byte("b"), 0)

	if err := c.Delete(Key("a", 25000)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get(Key("a", 25000)); found {
		t.Error("expected miss after Delete")
	}
	if _, found := c.Get(Key("b", 25000)); !found {
		t.Error("expected other entry to survive Delete")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get(Key("b", 25000)); found {
		t.Error("expected miss after Clear")
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := Key("Claimant: Jane Roe", 25000)
	b := Key("Claimant: Jane Roe", 25000)
	if a != b {
		t.Errorf("same text produced different keys: %s vs %s", a, b)
	}
	if c := Key("Claimant: John Roe", 25000); c == a {
		t.Error("different text produced the same key")
	}
	if c := Key("Claimant: Jane Roe", 4000); c == a {
		t.Error("different threshold produced the same key")
	}
	if !strings.HasPrefix(a, "fnoltriage:v1:") {
		t.Errorf("key missing namespace prefix: %s", a)
	}
}
