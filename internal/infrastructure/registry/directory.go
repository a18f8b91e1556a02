package registry

import (
	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
)

// Servidores RDAP por TLD — IANA bootstrap: https://data.iana.org/rdap/dns.json
func defaultRDAPServers() map[string]string {
	return map[string]string{
		"com":  "https://rdap.verisign.com/com/v1/domain/",
		"net":  "https://rdap.verisign.com/net/v1/domain/",
		"org":  "https://rdap.publicinterestregistry.org/rdap/domain/",
		"ai":   "https://rdap.identitydigital.services/rdap/domain/",
		"app":  "https://pubapi.registry.google/rdap/domain/",
		"dev":  "https://pubapi.registry.google/rdap/domain/",
		"tech": "https://rdap.centralnic.com/tech/domain/",
	}
}

// Fallback WHOIS para ccTLDs sin soporte RDAP (.io, .co, .me)
func defaultWhoisServers() map[string]domain.WhoisEndpoint {
	return map[string]domain.WhoisEndpoint{
		"io": {Host: "whois.nic.io", Port: 43},
		"co": {Host: "whois.nic.co", Port: 43},
		"me": {Host: "whois.nic.me", Port: 43},
	}
}

// Directory resuelve el binding de protocolo para cada TLD. Las tablas se
// construyen una vez al inicio y no se mutan después.
type Directory struct {
	rdap   map[string]string
	whois  map[string]domain.WhoisEndpoint
	logger zerolog.Logger
}

// NewDirectory crea el directorio con los servidores por defecto,
// sobreescritos o ampliados por la configuración.
func NewDirectory(config domain.CheckerConfig, logger zerolog.Logger) *Directory {
	rdap := defaultRDAPServers()
	for tld, base := range config.RDAPServers {
		rdap[tld] = base
	}

	whois := defaultWhoisServers()
	for tld, ep := range config.WhoisServers {
		if ep.Port == 0 {
			ep.Port = 43
		}
		whois[tld] = ep
	}

	logger.Debug().
		Int("rdap_servers", len(rdap)).
		Int("whois_servers", len(whois)).
		Msg("Directorio de registries inicializado")

	return &Directory{
		rdap:   rdap,
		whois:  whois,
		logger: logger,
	}
}

// Resolve busca primero la tabla RDAP, después la WHOIS. RDAP tiene
// prioridad porque su señal (404 vs 200) no es heurística.
func (d *Directory) Resolve(tld string) (domain.Binding, bool) {
	if base, ok := d.rdap[tld]; ok {
		return domain.Binding{Protocol: domain.ProtocolRDAP, RDAPBase: base}, true
	}
	if ep, ok := d.whois[tld]; ok {
		return domain.Binding{Protocol: domain.ProtocolWhois, Whois: ep}, true
	}
	d.logger.Debug().Str("tld", tld).Msg("TLD sin servidor conocido")
	return domain.Binding{}, false
}
