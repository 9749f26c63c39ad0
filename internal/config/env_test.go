package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Depth int  `env:"CHECKERS_TEST_DEPTH" envDefault:"3"`
	Block bool `env:"CHECKERS_TEST_BLOCK"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Depth != 3 {
		t.Fatalf("expected default depth 3, got %d", cfg.Depth)
	}
	if cfg.Block {
		t.Fatal("expected block to default to false")
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHECKERS_TEST_BLOCK", "true")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if !cfg.Block {
		t.Fatal("expected block from environment")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHECKERS_TEST_DEPTH", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
