package utils

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
)

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Fatalf("GetUsername returned error: %v", err)
	}
	if username == "" {
		t.Error("GetUsername returned empty string")
	}
}

func TestReadAll(t *testing.T) {
	data, err := readAll(strings.NewReader(`[{"flatpak":"x"}]`))
	if err != nil {
		t.Fatalf("readAll failed: %v", err)
	}
	if string(data) != `[{"flatpak":"x"}]` {
		t.Errorf("Expected input to be returned unchanged, got %q", data)
	}
}

func TestReadAllEmpty(t *testing.T) {
	_, err := readAll(strings.NewReader(""))
	if !errors.Is(err, kerrors.ErrNoInput) {
		t.Fatalf("Expected ErrNoInput for empty input, got %v", err)
	}
}
