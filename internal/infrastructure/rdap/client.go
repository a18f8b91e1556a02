package rdap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const userAgent = "domain-availability-checker/1.0"

// Client emite consultas RDAP reutilizando un único http.Client con
// connection pooling. Liberar con Close al final de la corrida.
type Client struct {
	http   *http.Client
	logger zerolog.Logger
}

func NewClient(timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Lookup hace un único GET a base+candidate y retorna el status code.
// El status code es la única señal que se consume del servidor RDAP.
func (c *Client) Lookup(ctx context.Context, base, candidate string) (int, error) {
	url := base + candidate

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creando request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("Error en consulta RDAP")
		return 0, err
	}
	defer resp.Body.Close()

	// Drenar el body para que la conexión vuelva al pool.
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug().
		Str("candidate", candidate).
		Int("status", resp.StatusCode).
		Msg("Consulta RDAP completada")

	return resp.StatusCode, nil
}

// Close libera las conexiones idle del pool.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
