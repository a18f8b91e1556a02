package domain

import (
	"fmt"
	"time"
)

// Status representa el resultado clasificado de un chequeo
type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
	StatusUnknown   Status = "unknown"
	StatusTimeout   Status = "timeout"
	StatusError     Status = "error"
	StatusNoServer  Status = "no-server"
)

// Verdict es el veredicto de un par (label, tld). Code lleva el status
// HTTP crudo cuando RDAP responde algo distinto de 200/404.
type Verdict struct {
	Status Status
	Code   int
}

func (v Verdict) String() string {
	if v.Status == StatusUnknown && v.Code != 0 {
		return fmt.Sprintf("unknown(%d)", v.Code)
	}
	return string(v.Status)
}

// Bucket es la partición de tres vías para reporting: todo lo que no es
// available ni taken cae en "unknown".
type Bucket string

const (
	BucketAvailable Bucket = "available"
	BucketTaken     Bucket = "taken"
	BucketUnknown   Bucket = "unknown"
)

func (v Verdict) Bucket() Bucket {
	switch v.Status {
	case StatusAvailable:
		return BucketAvailable
	case StatusTaken:
		return BucketTaken
	default:
		return BucketUnknown
	}
}

// CheckResult representa un dominio candidato ya chequeado
type CheckResult struct {
	Domain  string
	Verdict Verdict
}

// WhoisEndpoint es la dirección (host, puerto) de un servidor WHOIS
type WhoisEndpoint struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// Protocol identifica el protocolo de lookup de un binding
type Protocol string

const (
	ProtocolRDAP  Protocol = "rdap"
	ProtocolWhois Protocol = "whois"
)

// Binding asocia un TLD con su endpoint de lookup. Solo uno de RDAPBase
// o Whois es válido, según Protocol.
type Binding struct {
	Protocol Protocol
	RDAPBase string
	Whois    WhoisEndpoint
}

// RunTally acumula los dominios chequeados por bucket, en orden de chequeo
type RunTally struct {
	Available []string
	Taken     []string
	Unknown   []string
	Checked   int
}

// CheckerConfig contiene la configuración de la corrida
type CheckerConfig struct {
	WordsFile    string
	WordlistFile string
	TLDs         []string
	Timeout      time.Duration
	RateLimit    time.Duration
	OutputDir    string
	NoCSV        bool
	RDAPServers  map[string]string
	WhoisServers map[string]WhoisEndpoint
}

// RunResult representa el resultado completo de la corrida
type RunResult struct {
	Tally      RunTally
	Duration   time.Duration
	RecordFile string
}
