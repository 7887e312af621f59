package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/techsolutions/horabank/internal/config"
	"github.com/techsolutions/horabank/internal/devserver"
	"github.com/techsolutions/horabank/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("horabank-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := devserver.OpenSQLite(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open database error")
	}
	defer db.Close()

	auth, err := devserver.NewAuthenticator(cfg.TokenSignKey, cfg.TokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("init authenticator error")
	}

	repo := devserver.NewSQLiteRepository(db, log)
	handler := devserver.NewHandler(repo, auth, log)
	router := devserver.Routes(handler, auth, repo, cfg.RequestTimeout, log)

	server := devserver.NewServer(cfg.Address, router, log)
	if err = server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
