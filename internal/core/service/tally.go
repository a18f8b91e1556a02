package service

import (
	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
)

// TallyCollector acumula los resultados de la corrida por bucket. Los
// tres buckets particionan los pares chequeados sin solapamiento; cada
// par se agrega exactamente una vez.
type TallyCollector struct {
	tally  domain.RunTally
	logger zerolog.Logger
}

func NewTallyCollector(logger zerolog.Logger) *TallyCollector {
	return &TallyCollector{logger: logger}
}

func (tc *TallyCollector) Add(result domain.CheckResult) {
	tc.tally.Checked++

	switch result.Verdict.Bucket() {
	case domain.BucketAvailable:
		tc.tally.Available = append(tc.tally.Available, result.Domain)
	case domain.BucketTaken:
		tc.tally.Taken = append(tc.tally.Taken, result.Domain)
	default:
		tc.tally.Unknown = append(tc.tally.Unknown, result.Domain)
	}

	tc.logger.Debug().
		Str("domain", result.Domain).
		Str("verdict", result.Verdict.String()).
		Msg("Resultado acumulado")
}

func (tc *TallyCollector) Tally() domain.RunTally {
	return tc.tally
}
