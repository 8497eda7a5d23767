package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port    int    `env:"TEST_PORT" envDefault:"123"`
	Dataset string `env:"TEST_DATASET" envDefault:"launches.csv"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Dataset != "launches.csv" {
		t.Fatalf("expected default dataset, got %q", cfg.Dataset)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	t.Setenv("LAUNCHBOARD_TEST_PORT", "8050")
	t.Setenv("TEST_DATASET", "unprefixed.csv")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8050 {
		t.Fatalf("Port = %d, want 8050", cfg.Port)
	}
	if cfg.Dataset != "launches.csv" {
		t.Fatalf("Dataset = %q, want default (unprefixed variable must be ignored)", cfg.Dataset)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LAUNCHBOARD_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvMapIgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("LAUNCHBOARD_TEST_PORT", "9999")

	var cfg envTestConfig
	if err := ParseEnvMap(&cfg, map[string]string{"LAUNCHBOARD_TEST_DATASET": "other.csv"}); err != nil {
		t.Fatalf("parse env map: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
	if cfg.Dataset != "other.csv" {
		t.Fatalf("Dataset = %q, want %q", cfg.Dataset, "other.csv")
	}
}

// TestExitfExitsWithCode1 runs Exitf in a subprocess because os.Exit cannot
// be intercepted in-process.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "dataset missing")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: dataset missing") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: dataset missing", string(out))
	}
}
