package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"domaincheck/internal/core/domain"
)

const (
	DefaultWordsFile = "domain_words.json"
	DefaultTimeout   = 8 * time.Second
	DefaultRateLimit = 400 * time.Millisecond
)

// DefaultTLDs es el set fijo que se chequea si el usuario no lo
// sobreescribe con --tlds.
func DefaultTLDs() []string {
	return []string{"com", "ai", "app", "io", "co"}
}

// fileConfig es el esquema YAML en disco. Las duraciones van como
// strings ("8s", "400ms") porque yaml.v3 no decodifica time.Duration.
type fileConfig struct {
	WordsFile    string                          `yaml:"words_file,omitempty"`
	WordlistFile string                          `yaml:"wordlist_file,omitempty"`
	TLDs         []string                        `yaml:"tlds,omitempty"`
	Timeout      string                          `yaml:"timeout,omitempty"`
	RateLimit    string                          `yaml:"rate_limit,omitempty"`
	OutputDir    string                          `yaml:"output_dir,omitempty"`
	NoCSV        bool                            `yaml:"no_csv,omitempty"`
	RDAPServers  map[string]string               `yaml:"rdap_servers,omitempty"`
	WhoisServers map[string]domain.WhoisEndpoint `yaml:"whois_servers,omitempty"`
}

type Manager struct {
	defaults domain.CheckerConfig
}

func NewManager() *Manager {
	return &Manager{
		defaults: domain.CheckerConfig{
			WordsFile: DefaultWordsFile,
			TLDs:      DefaultTLDs(),
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
		},
	}
}

func (m *Manager) LoadFromFile(path string) (*domain.CheckerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error leyendo archivo de configuración: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("error parseando configuración YAML: %w", err)
	}

	config, err := fc.toChecker()
	if err != nil {
		return nil, err
	}

	config = m.applyDefaults(config)

	if err := m.Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (m *Manager) SaveToFile(config *domain.CheckerConfig, path string) error {
	fc := fileConfig{
		WordsFile:    config.WordsFile,
		WordlistFile: config.WordlistFile,
		TLDs:         config.TLDs,
		Timeout:      config.Timeout.String(),
		RateLimit:    config.RateLimit.String(),
		OutputDir:    config.OutputDir,
		NoCSV:        config.NoCSV,
		RDAPServers:  config.RDAPServers,
		WhoisServers: config.WhoisServers,
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("error serializando configuración: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error guardando configuración: %w", err)
	}

	return nil
}

func (fc fileConfig) toChecker() (domain.CheckerConfig, error) {
	config := domain.CheckerConfig{
		WordsFile:    fc.WordsFile,
		WordlistFile: fc.WordlistFile,
		TLDs:         fc.TLDs,
		OutputDir:    fc.OutputDir,
		NoCSV:        fc.NoCSV,
		RDAPServers:  fc.RDAPServers,
		WhoisServers: fc.WhoisServers,
	}

	var err error
	if fc.Timeout != "" {
		if config.Timeout, err = time.ParseDuration(fc.Timeout); err != nil {
			return domain.CheckerConfig{}, fmt.Errorf("timeout inválido %q: %w", fc.Timeout, err)
		}
	}
	if fc.RateLimit != "" {
		if config.RateLimit, err = time.ParseDuration(fc.RateLimit); err != nil {
			return domain.CheckerConfig{}, fmt.Errorf("rate_limit inválido %q: %w", fc.RateLimit, err)
		}
	}

	return config, nil
}

func (m *Manager) Validate(config *domain.CheckerConfig) error {
	if config.WordsFile == "" && config.WordlistFile == "" {
		return fmt.Errorf("se requiere un archivo de palabras")
	}
	if len(config.TLDs) == 0 {
		return fmt.Errorf("se requiere al menos un TLD")
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("el timeout debe ser mayor a 0")
	}
	if config.RateLimit < 0 {
		return fmt.Errorf("el rate limit no puede ser negativo")
	}
	for tld, ep := range config.WhoisServers {
		if ep.Host == "" {
			return fmt.Errorf("servidor WHOIS para %q sin host", tld)
		}
	}
	return nil
}

func (m *Manager) applyDefaults(config domain.CheckerConfig) domain.CheckerConfig {
	if config.WordsFile == "" {
		config.WordsFile = m.defaults.WordsFile
	}
	if len(config.TLDs) == 0 {
		config.TLDs = append([]string(nil), m.defaults.TLDs...)
	}
	if config.Timeout == 0 {
		config.Timeout = m.defaults.Timeout
	}
	if config.RateLimit == 0 {
		config.RateLimit = m.defaults.RateLimit
	}
	return config
}

// CreateDefaultConfig crea un archivo de configuración por defecto
func (m *Manager) CreateDefaultConfig(path string) error {
	defaults := m.Defaults()
	return m.SaveToFile(&defaults, path)
}

func (m *Manager) Defaults() domain.CheckerConfig {
	d := m.defaults
	d.TLDs = append([]string(nil), d.TLDs...)
	return d
}
