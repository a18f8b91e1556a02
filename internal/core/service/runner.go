package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
	"domaincheck/internal/core/ports"
)

// Runner orquesta la corrida completa: carga de palabras, chequeo serial
// de cada par (label, tld) con un delay fijo entre llamadas, acumulación
// del tally y persistencia del archivo de resultados. Estrictamente
// secuencial: una sola operación de red en vuelo.
type Runner struct {
	checker    ports.DomainChecker
	wordSource ports.WordSource
	recorder   ports.RecordWriter
	reporter   ports.ProgressReporter
	logger     zerolog.Logger
}

func NewRunner(
	checker ports.DomainChecker,
	wordSource ports.WordSource,
	recorder ports.RecordWriter,
	reporter ports.ProgressReporter,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		checker:    checker,
		wordSource: wordSource,
		recorder:   recorder,
		reporter:   reporter,
		logger:     logger,
	}
}

func (r *Runner) Run(ctx context.Context, config domain.CheckerConfig) (*domain.RunResult, error) {
	startTime := time.Now()

	labels, err := r.loadLabels(config)
	if err != nil {
		// Único error fatal: sin palabras no hay nada que chequear y no
		// se hace ninguna llamada de red.
		r.logger.Error().Err(err).Msg("Error cargando palabras")
		return nil, fmt.Errorf("cargando palabras: %w", err)
	}

	r.logger.Info().
		Int("words", len(labels)).
		Strs("tlds", config.TLDs).
		Msg("Iniciando chequeo de disponibilidad")

	r.reporter.Start(len(labels), len(config.TLDs))

	collector := NewTallyCollector(r.logger)

	// Orden label-mayor, tld-menor; cada par produce exactamente un
	// veredicto y nunca se revisa.
	for _, label := range labels {
		for _, tld := range config.TLDs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			result := domain.CheckResult{
				Domain:  label + "." + tld,
				Verdict: r.checker.Check(ctx, label, tld),
			}

			collector.Add(result)
			r.reporter.Report(result)

			// Único mecanismo de rate limiting: delay fijo entre pares
			// para no saturar los servidores de terceros.
			if config.RateLimit > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(config.RateLimit):
				}
			}
		}
	}

	tally := collector.Tally()
	duration := time.Since(startTime)

	recordFile := ""
	if !config.NoCSV && (len(tally.Available) > 0 || len(tally.Unknown) > 0) {
		recordFile, err = r.recorder.SaveResults(tally, config.OutputDir)
		if err != nil {
			r.logger.Error().Err(err).Msg("Error guardando resultados")
			return nil, fmt.Errorf("guardando resultados: %w", err)
		}
		r.logger.Info().Str("file", recordFile).Msg("Resultados guardados")
	}

	r.reporter.Summary(tally, recordFile)

	r.logger.Info().
		Int("checked", tally.Checked).
		Int("available", len(tally.Available)).
		Int("taken", len(tally.Taken)).
		Int("unknown", len(tally.Unknown)).
		Dur("duration", duration).
		Msg("Chequeo completado")

	return &domain.RunResult{
		Tally:      tally,
		Duration:   duration,
		RecordFile: recordFile,
	}, nil
}

// loadLabels elige la fuente: lista plana si fue indicada, si no el
// archivo estructurado.
func (r *Runner) loadLabels(config domain.CheckerConfig) ([]string, error) {
	if config.WordlistFile != "" {
		return r.wordSource.LoadPlain(config.WordlistFile)
	}
	return r.wordSource.LoadStructured(config.WordsFile)
}
