package whois

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
)

// Client implementa el protocolo WHOIS clásico: conectar al puerto 43,
// enviar la consulta terminada en CRLF y leer hasta que el peer cierre.
type Client struct {
	dialer  net.Dialer
	timeout time.Duration
	logger  zerolog.Logger
}

func NewClient(timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		dialer:  net.Dialer{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
}

// Query abre una conexión, envía el dominio candidato y retorna el cuerpo
// completo de la respuesta. El deadline cubre todo el intercambio: no hay
// lecturas bloqueantes sin límite.
func (c *Client) Query(ctx context.Context, endpoint domain.WhoisEndpoint, candidate string) (string, error) {
	addr := net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))

	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		c.logger.Debug().Err(err).Str("addr", addr).Msg("Error conectando a servidor WHOIS")
		return "", fmt.Errorf("conectando a %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", fmt.Errorf("configurando deadline: %w", err)
	}

	if _, err := conn.Write([]byte(candidate + "\r\n")); err != nil {
		return "", fmt.Errorf("enviando consulta: %w", err)
	}

	body, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("leyendo respuesta: %w", err)
	}

	c.logger.Debug().
		Str("candidate", candidate).
		Str("server", endpoint.Host).
		Int("bytes", len(body)).
		Msg("Consulta WHOIS completada")

	return string(body), nil
}
