package words

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/net/idna"
)

// wordsFile es el documento estructurado: lista plana más la expansión
// cartesiana prefixes × roots. Claves ausentes quedan vacías.
type wordsFile struct {
	Words    []string `json:"words"`
	Prefixes []string `json:"prefixes"`
	Roots    []string `json:"roots"`
}

type Loader struct {
	logger zerolog.Logger
}

func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadStructured carga un archivo JSON con words/prefixes/roots y produce
// la lista plana unida con cada combinación prefix+root (concatenación
// directa, sin separador).
func (l *Loader) LoadStructured(path string) ([]string, error) {
	l.logger.Debug().Str("path", path).Msg("Cargando archivo de palabras")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leyendo archivo de palabras: %w", err)
	}

	var wf wordsFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parseando archivo de palabras: %w", err)
	}

	labels := make([]string, 0, len(wf.Words)+len(wf.Prefixes)*len(wf.Roots))
	labels = append(labels, wf.Words...)
	for _, p := range wf.Prefixes {
		for _, r := range wf.Roots {
			labels = append(labels, p+r)
		}
	}

	labels = l.Normalize(labels)
	l.logger.Debug().Int("labels", len(labels)).Msg("Palabras cargadas")
	return labels, nil
}

// LoadPlain carga una lista de texto plano, una palabra por línea.
// Líneas en blanco se ignoran.
func (l *Loader) LoadPlain(path string) ([]string, error) {
	l.logger.Debug().Str("path", path).Msg("Cargando wordlist")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo wordlist: %w", err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			l.logger.Warn().Err(err).Msg("Error cerrando archivo")
		}
	}(file)

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("leyendo wordlist: %w", err)
	}

	lines = l.Normalize(lines)
	l.logger.Debug().Int("labels", len(lines)).Msg("Wordlist cargada")
	return lines, nil
}

// Normalize aplica lowercase y deduplica preservando el orden de primera
// aparición. Idempotente.
func (l *Loader) Normalize(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, raw := range labels {
		label := l.normalizeLabel(raw)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

func (l *Loader) normalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	if label == "" || isASCII(label) {
		return label
	}

	// Label no-ASCII: convertir a punycode para el lookup.
	ascii, err := idna.Lookup.ToASCII(label)
	if err != nil {
		l.logger.Debug().Err(err).Str("label", raw).Msg("Error en conversión IDNA, usando label tal cual")
		return label
	}
	return strings.ToLower(ascii)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
