package config

import (
	"os"
	"sync"
	"testing"
)

func TestLoad(t *testing.T) {
	tempConfig := `server:
  addr: ":9090"
weather:
  base_url: "https://api.openweathermap.org/data/2.5/forecast"
  units: "metric"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(tempConfig)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	instance = nil
	once = *new(sync.Once)

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected server addr ':9090', got '%s'", cfg.Server.Addr)
	}

	if cfg.Weather.BaseURL != "https://api.openweathermap.org/data/2.5/forecast" {
		t.Errorf("Unexpected weather base URL: %s", cfg.Weather.BaseURL)
	}

	if cfg.Weather.Units != "metric" {
		t.Errorf("Expected units 'metric', got '%s'", cfg.Weather.Units)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte("{}\n")); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	instance = nil
	once = *new(sync.Once)

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default addr ':8080', got '%s'", cfg.Server.Addr)
	}

	if cfg.Weather.Units != "metric" {
		t.Errorf("Expected default units 'metric', got '%s'", cfg.Weather.Units)
	}
}

func TestLoad_InvalidUnits(t *testing.T) {
	tempConfig := `weather:
  units: "kelvin"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(tempConfig)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	instance = nil
	once = *new(sync.Once)

	if _, err := Load(tmpFile.Name()); err == nil {
		t.Error("Load() expected error for invalid units, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	instance = nil
	once = *new(sync.Once)

	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
