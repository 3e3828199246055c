package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("got %+v, want defaults", s)
	}
}

func TestLoadSettingsParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arkdump.toml")
	contents := "max_objects = 500\noutput_dir = \"/tmp/out\"\nmap_name = \"Ragnarok\"\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.MaxObjects != 500 || s.OutputDir != "/tmp/out" || s.MapName != "Ragnarok" {
		t.Fatalf("got %+v", s)
	}
}
