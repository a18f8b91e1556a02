package cli

import (
	"flag"
	"fmt"
	"strings"

	"domaincheck/internal/core/domain"
	"domaincheck/internal/infrastructure/config"
)

type CLIConfig struct {
	CheckerConfig domain.CheckerConfig
	ConfigFile    string
	CreateConfig  string
	SetFlags      map[string]bool
}

func ParseFlags(args []string) (*CLIConfig, error) {
	fs := flag.NewFlagSet("domaincheck", flag.ContinueOnError)

	cliConfig := CLIConfig{
		CheckerConfig: domain.CheckerConfig{
			WordsFile: config.DefaultWordsFile,
			TLDs:      config.DefaultTLDs(),
			Timeout:   config.DefaultTimeout,
			RateLimit: config.DefaultRateLimit,
		},
	}

	var tlds string

	fs.StringVar(&cliConfig.CheckerConfig.WordsFile, "words", config.DefaultWordsFile, "Ruta al archivo JSON de palabras (words/prefixes/roots)")
	fs.StringVar(&tlds, "tlds", "", "TLDs a chequear, separados por coma (ej: com,ai,io)")
	fs.DurationVar(&cliConfig.CheckerConfig.Timeout, "timeout", config.DefaultTimeout, "Timeout por consulta")
	fs.DurationVar(&cliConfig.CheckerConfig.RateLimit, "rate-limit", config.DefaultRateLimit, "Delay fijo entre consultas")
	fs.StringVar(&cliConfig.CheckerConfig.OutputDir, "output-dir", "", "Directorio para el CSV de resultados (default: directorio actual)")
	fs.BoolVar(&cliConfig.CheckerConfig.NoCSV, "no-csv", false, "No guardar el CSV de resultados")

	fs.StringVar(&cliConfig.ConfigFile, "config", "", "Ruta al archivo de configuración YAML")
	fs.StringVar(&cliConfig.CreateConfig, "create-config", "", "Crear archivo de configuración por defecto en la ruta especificada")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Argumento posicional: wordlist de texto plano, una palabra por línea.
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("se esperaba a lo sumo un argumento posicional, recibidos %d", fs.NArg())
	}
	if fs.NArg() == 1 {
		cliConfig.CheckerConfig.WordlistFile = fs.Arg(0)
	}

	if tlds != "" {
		cliConfig.CheckerConfig.TLDs = splitTLDs(tlds)
		if len(cliConfig.CheckerConfig.TLDs) == 0 {
			return nil, fmt.Errorf("--tlds no contiene ningún TLD válido")
		}
	}

	// Registrar qué flags fueron seteados explícitamente para que puedan
	// sobreescribir lo que venga del archivo de configuración.
	cliConfig.SetFlags = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		cliConfig.SetFlags[f.Name] = true
	})

	return &cliConfig, nil
}

func splitTLDs(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(t, ".")))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// MergeConfigFile aplica la configuración cargada de archivo, dejando que
// los flags explícitos de CLI tengan prioridad.
func (c *CLIConfig) MergeConfigFile(fileConfig domain.CheckerConfig) {
	merged := fileConfig

	if c.SetFlags["words"] {
		merged.WordsFile = c.CheckerConfig.WordsFile
	}
	if c.SetFlags["tlds"] {
		merged.TLDs = c.CheckerConfig.TLDs
	}
	if c.SetFlags["timeout"] {
		merged.Timeout = c.CheckerConfig.Timeout
	}
	if c.SetFlags["rate-limit"] {
		merged.RateLimit = c.CheckerConfig.RateLimit
	}
	if c.SetFlags["output-dir"] {
		merged.OutputDir = c.CheckerConfig.OutputDir
	}
	if c.SetFlags["no-csv"] {
		merged.NoCSV = c.CheckerConfig.NoCSV
	}
	if c.CheckerConfig.WordlistFile != "" {
		merged.WordlistFile = c.CheckerConfig.WordlistFile
	}

	c.CheckerConfig = merged
}
