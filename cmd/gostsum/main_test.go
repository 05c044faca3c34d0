package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestNewHash(t *testing.T) {
	for _, bits := range []int{256, 512} {
		h, err := newHash(bits)
		if err != nil {
			t.Fatalf("newHash(%d): %v", bits, err)
		}
		if h.Size() != bits/8 {
			t.Fatalf("newHash(%d).Size() = %d", bits, h.Size())
		}
	}
	if _, err := newHash(384); err == nil {
		t.Fatal("newHash(384) accepted an unsupported size")
	}
}

func TestHashInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digits")
	if err := os.WriteFile(path, digitsMsg, 0o644); err != nil {
		t.Fatal(err)
	}

	h, _ := newHash(512)
	if err := hashInput(h, path); err != nil {
		t.Fatalf("hashInput: %v", err)
	}
	got := fmt.Sprintf("%x", h.Sum(nil))
	want := controlExamples[0].want
	if got != want {
		t.Fatalf("digest of file = %s, want %s", got, want)
	}
}

func TestHashInputMissingFile(t *testing.T) {
	h, _ := newHash(512)
	if err := hashInput(h, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSelftestVectors(t *testing.T) {
	for _, ce := range controlExamples {
		h, err := newHash(ce.bits)
		if err != nil {
			t.Fatal(err)
		}
		h.Write(ce.msg)
		if got := fmt.Sprintf("%x", h.Sum(nil)); got != ce.want {
			t.Fatalf("%s: got %s, want %s", ce.name, got, ce.want)
		}
	}
}
