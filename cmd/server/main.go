package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/cashops/cash-bank/cmd/httpserver"
	"github.com/cashops/cash-bank/internal/middleware"
	"github.com/cashops/cash-bank/pkg/configpkg"
	"github.com/cashops/cash-bank/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to the database")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot build the bank")
	}

	server.Scheduler.Start()
	defer server.Scheduler.Stop()

	logger.Info().Str("address", config.ServerAddress).Msg("starting server")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
