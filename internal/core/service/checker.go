package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
	"domaincheck/internal/core/ports"
)

// Frases heurísticas para clasificar respuestas WHOIS. La comparación es
// case-insensitive sobre el cuerpo completo.
var (
	whoisAvailablePhrases = []string{"no match", "not found", "no data found"}
	whoisTakenPhrases     = []string{"domain name:", "registrar:", "registered"}
)

// Checker despacha un lookup por par (label, tld): RDAP si hay binding
// estructurado, WHOIS como fallback, y clasifica la respuesta en un
// veredicto. Exactamente una operación de red por llamada, sin reintentos.
type Checker struct {
	directory ports.RegistryDirectory
	rdap      ports.RDAPClient
	whois     ports.WhoisClient
	logger    zerolog.Logger
}

func NewChecker(
	directory ports.RegistryDirectory,
	rdap ports.RDAPClient,
	whois ports.WhoisClient,
	logger zerolog.Logger,
) *Checker {
	return &Checker{
		directory: directory,
		rdap:      rdap,
		whois:     whois,
		logger:    logger.With().Str("component", "checker").Logger(),
	}
}

// Check retorna siempre un veredicto del conjunto cerrado; nunca propaga
// errores más allá de su límite.
func (c *Checker) Check(ctx context.Context, label, tld string) domain.Verdict {
	candidate := label + "." + tld

	binding, ok := c.directory.Resolve(tld)
	if !ok {
		// Sin binding no se intenta ninguna operación de red.
		return domain.Verdict{Status: domain.StatusNoServer}
	}

	switch binding.Protocol {
	case domain.ProtocolRDAP:
		return c.checkRDAP(ctx, binding.RDAPBase, candidate)
	default:
		return c.checkWhois(ctx, binding.Whois, candidate)
	}
}

// checkRDAP consume solo el status code: 404 = no registrado, 200 =
// registrado. Cualquier otro código se reporta como unknown con el código
// para diagnóstico.
func (c *Checker) checkRDAP(ctx context.Context, base, candidate string) domain.Verdict {
	code, err := c.rdap.Lookup(ctx, base, candidate)
	if err != nil {
		if isTimeout(err) {
			return domain.Verdict{Status: domain.StatusTimeout}
		}
		return domain.Verdict{Status: domain.StatusError}
	}

	switch code {
	case http.StatusNotFound:
		return domain.Verdict{Status: domain.StatusAvailable}
	case http.StatusOK:
		return domain.Verdict{Status: domain.StatusTaken}
	default:
		return domain.Verdict{Status: domain.StatusUnknown, Code: code}
	}
}

// checkWhois clasifica por keywords. Es una heurística de menor confianza
// que RDAP: si no aparece ninguna frase conocida, el default seguro es
// unknown.
func (c *Checker) checkWhois(ctx context.Context, endpoint domain.WhoisEndpoint, candidate string) domain.Verdict {
	body, err := c.whois.Query(ctx, endpoint, candidate)
	if err != nil {
		return domain.Verdict{Status: domain.StatusError}
	}

	text := strings.ToLower(body)
	for _, phrase := range whoisAvailablePhrases {
		if strings.Contains(text, phrase) {
			return domain.Verdict{Status: domain.StatusAvailable}
		}
	}
	for _, phrase := range whoisTakenPhrases {
		if strings.Contains(text, phrase) {
			return domain.Verdict{Status: domain.StatusTaken}
		}
	}
	return domain.Verdict{Status: domain.StatusUnknown}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
