package cache

import (
	"strings"
	"testing"
	"time"
)

func TestReportKey(t *testing.T) {
	base := ReportKey("some text", "fantasy")
	if !strings.HasPrefix(base, "manuscan:v1:") {
		t.Errorf("key missing namespace prefix: %s", base)
	}

	if ReportKey("some text", "fantasy") != base {
		t.Error("identical inputs must yield identical keys")
	}
	if ReportKey("other text", "fantasy") == base {
		t.Error("different text must yield a different key")
	}
	if ReportKey("some text", "romance") == base {
		t.Error("different genre must yield a different key")
	}
	// The separator keeps (genre, text) pairs from colliding when the
	// boundary shifts.
	if ReportKey("btext", "genre-a") == ReportKey("text", "genre-ab") {
		t.Error("genre/text boundary collision")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit on empty cache")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("Get = %q, %v; want v, true", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("entry survived Delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(ReportKey("text", "genre"), []byte("report"), 0); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get(ReportKey("text", "genre"))
	if !found || string(got) != "report" {
		t.Errorf("Get = %q, %v; want report, true", got, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry served")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	// A fresh layered cache over the same directory has a cold memory
	// layer; the value must come back from disk and get promoted.
	fresh := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found := fresh.Get("k")
	if !found || string(got) != "v" {
		t.Fatalf("disk layer miss: %q, %v", got, found)
	}
	if _, found := fresh.memory.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
