package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"domaincheck/internal/core/domain"
)

func TestManager_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tlds: [com, io]
rate_limit: 1s
rdap_servers:
  com: https://rdap.example/com/domain/
whois_servers:
  io:
    host: whois.example
    port: 43
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	cfg, err := m.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if want := []string{"com", "io"}; !reflect.DeepEqual(cfg.TLDs, want) {
		t.Errorf("TLDs = %v, want %v", cfg.TLDs, want)
	}
	if cfg.RateLimit != time.Second {
		t.Errorf("RateLimit = %v, want 1s", cfg.RateLimit)
	}
	// Defaults aplicados para lo no especificado.
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.WordsFile != DefaultWordsFile {
		t.Errorf("WordsFile = %q, want default %q", cfg.WordsFile, DefaultWordsFile)
	}
	if cfg.RDAPServers["com"] != "https://rdap.example/com/domain/" {
		t.Errorf("RDAPServers = %v", cfg.RDAPServers)
	}
}

func TestManager_LoadFromFileErrors(t *testing.T) {
	m := NewManager()

	t.Run("missing file", func(t *testing.T) {
		if _, err := m.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("tlds: ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := m.LoadFromFile(path); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dur.yaml")
		if err := os.WriteFile(path, []byte("timeout: ocho\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := m.LoadFromFile(path); err == nil {
			t.Error("expected error")
		}
	})
}

func TestManager_Validate(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name    string
		mutate  func(*domain.CheckerConfig)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *domain.CheckerConfig) {}},
		{name: "no word source", mutate: func(c *domain.CheckerConfig) { c.WordsFile = "" }, wantErr: true},
		{name: "wordlist alone is enough", mutate: func(c *domain.CheckerConfig) {
			c.WordsFile = ""
			c.WordlistFile = "words.txt"
		}},
		{name: "no tlds", mutate: func(c *domain.CheckerConfig) { c.TLDs = nil }, wantErr: true},
		{name: "zero timeout", mutate: func(c *domain.CheckerConfig) { c.Timeout = 0 }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *domain.CheckerConfig) { c.RateLimit = -time.Second }, wantErr: true},
		{name: "whois server without host", mutate: func(c *domain.CheckerConfig) {
			c.WhoisServers = map[string]domain.WhoisEndpoint{"io": {Port: 43}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := m.Defaults()
			tt.mutate(&cfg)
			err := m.Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_CreateDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManager()

	if err := m.CreateDefaultConfig(path); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	cfg, err := m.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.TLDs, DefaultTLDs()) {
		t.Errorf("TLDs = %v, want %v", cfg.TLDs, DefaultTLDs())
	}
	if cfg.RateLimit != DefaultRateLimit {
		t.Errorf("RateLimit = %v, want %v", cfg.RateLimit, DefaultRateLimit)
	}
}
