package blobstore

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	store.now = func() time.Time {
		return time.Date(2026, time.March, 14, 15, 9, 2, 0, time.UTC)
	}
	return store
}

func TestSaveNamesFileWithTimestampPrefix(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save("team photo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ref != "uploads/14032026150902_team_photo.png" {
		t.Fatalf("unexpected ref: %s", ref)
	}

	f, err := store.Open("14032026150902_team_photo.png")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("script.sh", strings.NewReader("#!/bin/sh")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestSaveEnforcesSizeLimit(t *testing.T) {
	store := newTestStore(t)
	store.maxBytes = 4

	if _, err := store.Save("big.pdf", strings.NewReader("too large")); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../secret.png", "..", "a/b.png", ""} {
		if _, err := store.Open(name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %q, got %v", name, err)
		}
	}
}

func TestAllowed(t *testing.T) {
	if !Allowed("scan.JPG") {
		t.Fatal("expected uppercase jpg to be allowed")
	}
	if Allowed("notes.txt") {
		t.Fatal("expected txt to be rejected")
	}
}
