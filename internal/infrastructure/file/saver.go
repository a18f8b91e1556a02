package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
)

// Saver persiste el tally como archivo CSV plano con timestamp en el
// nombre. Dos columnas fijas: domain, status.
type Saver struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewSaver(logger zerolog.Logger) *Saver {
	return &Saver{logger: logger, now: time.Now}
}

// SaveResults escribe todos los resultados en orden de bucket
// (available, taken, unknown) y retorna la ruta del archivo creado.
// Timeout/error/no-server se reportan como "unknown" en este archivo.
func (s *Saver) SaveResults(tally domain.RunTally, dir string) (string, error) {
	name := fmt.Sprintf("domain_results_%s.csv", s.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creando archivo: %w", err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Error cerrando archivo")
		}
	}(f)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"domain", "status"}); err != nil {
		return "", fmt.Errorf("escribiendo header: %w", err)
	}

	rows := [][2]string{}
	for _, d := range tally.Available {
		rows = append(rows, [2]string{d, string(domain.BucketAvailable)})
	}
	for _, d := range tally.Taken {
		rows = append(rows, [2]string{d, string(domain.BucketTaken)})
	}
	for _, d := range tally.Unknown {
		rows = append(rows, [2]string{d, string(domain.BucketUnknown)})
	}

	for _, row := range rows {
		if err := w.Write(row[:]); err != nil {
			return "", fmt.Errorf("escribiendo fila: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("escribiendo CSV: %w", err)
	}

	s.logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("Resultados guardados en CSV")
	return path, nil
}
