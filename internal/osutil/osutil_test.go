package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type stubProvider struct{}

func (stubProvider) UserConfigDir() (string, error) { return "/stub", nil }

func (stubProvider) MkdirAll(string, os.FileMode) error { return errors.New("denied") }

func (stubProvider) LookPath(string) (string, error) { return "", errors.New("not found") }

func TestDefaultPathProvider_UserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := DefaultPathProvider{}.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir returned error: %v", err)
	}
	if dir == "" {
		t.Error("UserConfigDir returned empty string")
	}
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	if err := (DefaultPathProvider{}).MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path is not a directory")
	}
}

func TestDefaultPathProvider_LookPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-ctt")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake executable: %v", err)
	}
	t.Setenv("PATH", dir)

	got, err := DefaultPathProvider{}.LookPath("fake-ctt")
	if err != nil {
		t.Fatalf("LookPath returned error: %v", err)
	}
	if got != bin {
		t.Errorf("LookPath = %q, expected %q", got, bin)
	}

	if _, err := (DefaultPathProvider{}).LookPath("definitely-not-installed-xyz"); err == nil {
		t.Error("LookPath should fail for a missing executable")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	SetProvider(stubProvider{})
	if _, ok := Provider.(stubProvider); !ok {
		t.Fatalf("SetProvider did not install the stub, got %T", Provider)
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("ResetProvider did not restore the default, got %T", Provider)
	}
}
