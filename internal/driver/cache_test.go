package driver_test

import (
	"testing"

	"sysmlc/internal/driver"
)

func TestDiskCachePutGetRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("sysmlc-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	d := newTestDocument(t, `part def A;`)
	d.Run(nil)

	hash := [32]byte{1, 2, 3}
	payload := driver.ToCachedDocument(d)
	if err := cache.Put(hash, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get(hash)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Valid != payload.Valid {
		t.Fatalf("Valid mismatch: got %v want %v", got.Valid, payload.Valid)
	}
	if len(got.ExportNames) != len(payload.ExportNames) {
		t.Fatalf("ExportNames mismatch: got %v want %v", got.ExportNames, payload.ExportNames)
	}
}

func TestDiskCacheMissReturnsFalse(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("sysmlc-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	_, ok, err := cache.Get([32]byte{9, 9, 9})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected cache miss on empty cache")
	}
}
