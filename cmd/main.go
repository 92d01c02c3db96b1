// Package main starts the payments API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-payments/cmd/httpserver"
	"github.com/go-petr/pet-payments/internal/accountrepo"
	"github.com/go-petr/pet-payments/internal/middleware"
	"github.com/go-petr/pet-payments/pkg/configpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	store, db, err := accountrepo.Open(config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open account store")
	}

	server, err := httpserver.New(store, db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("data_store_type", config.DataStoreType).Msg("PAYMENTS API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
