package ports

import (
	"context"

	"domaincheck/internal/core/domain"
)

// RunnerService define el puerto de entrada para una corrida completa
type RunnerService interface {
	Run(ctx context.Context, config domain.CheckerConfig) (*domain.RunResult, error)
}

// DomainChecker realiza el chequeo de un par (label, tld)
type DomainChecker interface {
	Check(ctx context.Context, label, tld string) domain.Verdict
}

// RegistryDirectory resuelve el binding de protocolo para un TLD
type RegistryDirectory interface {
	Resolve(tld string) (domain.Binding, bool)
}

// RDAPClient emite una consulta RDAP y retorna el status code
type RDAPClient interface {
	Lookup(ctx context.Context, base, candidate string) (int, error)
	Close()
}

// WhoisClient emite una consulta WHOIS y retorna el cuerpo de la respuesta
type WhoisClient interface {
	Query(ctx context.Context, endpoint domain.WhoisEndpoint, candidate string) (string, error)
}

// WordSource carga y normaliza la lista de palabras candidatas
type WordSource interface {
	LoadStructured(path string) ([]string, error)
	LoadPlain(path string) ([]string, error)
}

// RecordWriter persiste los resultados de la corrida
type RecordWriter interface {
	SaveResults(tally domain.RunTally, dir string) (string, error)
}

// ProgressReporter reporta el progreso y el resumen por consola
type ProgressReporter interface {
	Start(words, tlds int)
	Report(result domain.CheckResult)
	Summary(tally domain.RunTally, recordFile string)
}
