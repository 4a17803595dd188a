package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Embedding: EmbeddingConfig{Provider: "offline"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_Providers(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"offline needs nothing", func(c *Config) { c.Embedding.Provider = "offline" }, false},
		{"gemini without key", func(c *Config) { c.Embedding.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) {
			c.Embedding.Provider = "gemini"
			c.Embedding.Gemini.APIKey = "k"
		}, false},
		{"openai without key", func(c *Config) { c.Embedding.Provider = "openai" }, true},
		{"unknown provider", func(c *Config) { c.Embedding.Provider = "weaviate" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_ParserNeedsGeminiKeyAndModel(t *testing.T) {
	cfg := validConfig()
	cfg.Parser.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error: parser enabled without gemini key")
	}

	cfg.Embedding.Gemini.APIKey = "k"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error: parser enabled without model")
	}

	cfg.Parser.Model = "gemini-2.0-flash"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Embedding.Provider != "offline" {
		t.Errorf("expected offline provider default, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimensions != 768 {
		t.Errorf("expected Dimensions=768, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.Search.MaxVectorResults != 50 {
		t.Errorf("expected MaxVectorResults=50, got %d", cfg.Search.MaxVectorResults)
	}
	if cfg.Search.MaxStructuredResults != 100 {
		t.Errorf("expected MaxStructuredResults=100, got %d", cfg.Search.MaxStructuredResults)
	}
	if cfg.Search.MaxFinalResults != 20 {
		t.Errorf("expected MaxFinalResults=20, got %d", cfg.Search.MaxFinalResults)
	}
	if cfg.Search.ChannelTimeoutMs != 2000 {
		t.Errorf("expected ChannelTimeoutMs=2000, got %d", cfg.Search.ChannelTimeoutMs)
	}
	if cfg.Ingest.BatchWorkers != 4 {
		t.Errorf("expected BatchWorkers=4, got %d", cfg.Ingest.BatchWorkers)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("MM_TEST_VAR", "redis-1:6379")
	defer os.Unsetenv("MM_TEST_VAR")

	in := []byte("addr: ${MM_TEST_VAR}\nkey: ${MM_TEST_MISSING:-fallback}\n")
	out := string(expandEnvVars(in))

	want := "addr: redis-1:6379\nkey: fallback\n"
	if out != want {
		t.Errorf("expandEnvVars = %q, want %q", out, want)
	}
}
