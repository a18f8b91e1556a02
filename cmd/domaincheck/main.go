package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"domaincheck/internal/core/service"
	"domaincheck/internal/infrastructure/config"
	"domaincheck/internal/infrastructure/file"
	"domaincheck/internal/infrastructure/logging"
	"domaincheck/internal/infrastructure/progress"
	"domaincheck/internal/infrastructure/rdap"
	"domaincheck/internal/infrastructure/registry"
	"domaincheck/internal/infrastructure/whois"
	"domaincheck/internal/infrastructure/words"
	"domaincheck/internal/interfaces/cli"
)

func main() {
	// Configurar logging
	logger := logging.NewLogger()

	// Parsear flags de CLI
	cliConfig, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("Error parseando flags")
	}

	configManager := config.NewManager()

	// Crear configuración por defecto
	if cliConfig.CreateConfig != "" {
		if err := configManager.CreateDefaultConfig(cliConfig.CreateConfig); err != nil {
			logger.Fatal().Err(err).Msg("Error creando archivo de configuración")
		}
		fmt.Printf("Archivo de configuración creado: %s\n", cliConfig.CreateConfig)
		os.Exit(0)
	}

	// Cargar configuración desde archivo si fue indicado; los flags
	// explícitos de CLI tienen prioridad.
	if cliConfig.ConfigFile != "" {
		fileConfig, err := configManager.LoadFromFile(cliConfig.ConfigFile)
		if err != nil {
			logger.Fatal().Err(err).Str("config_file", cliConfig.ConfigFile).Msg("Error cargando configuración")
		}
		cliConfig.MergeConfigFile(*fileConfig)
		logger.Info().Str("config_file", cliConfig.ConfigFile).Msg("Configuración cargada desde archivo")
	}

	cfg := cliConfig.CheckerConfig

	// Validar configuración
	if err := configManager.Validate(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("Configuración inválida")
	}

	// Configurar contexto con cancelación
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Inicializar dependencias
	directory := registry.NewDirectory(cfg, logger)
	rdapClient := rdap.NewClient(cfg.Timeout, logger)
	defer rdapClient.Close()
	whoisClient := whois.NewClient(cfg.Timeout, logger)
	wordLoader := words.NewLoader(logger)
	saver := file.NewSaver(logger)
	reporter := progress.NewReporter(os.Stdout)

	checker := service.NewChecker(directory, rdapClient, whoisClient, logger)
	runner := service.NewRunner(checker, wordLoader, saver, reporter, logger)

	// Ejecutar corrida
	result, err := runner.Run(ctx, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn().Msg("Corrida interrumpida")
			os.Exit(130)
		}
		logger.Error().Err(err).Msg("Error durante la corrida")
		os.Exit(1)
	}

	logger.Info().
		Int("available", len(result.Tally.Available)).
		Dur("duration", result.Duration).
		Msg("Corrida completada exitosamente")
}
