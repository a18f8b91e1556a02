package logging

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func NewLogger() zerolog.Logger {
	// Cargar .env si existe; las variables ya presentes tienen prioridad.
	_ = godotenv.Load()

	// Configurar logger con output estructurado
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	// Configurar nivel de log desde environment variable
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		level, err := zerolog.ParseLevel(logLevel)
		if err == nil {
			logger = logger.Level(level)
		}
	}

	return logger
}
