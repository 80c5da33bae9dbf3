package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/s-turchinskiy/gzipresponse/internal/server"
	"github.com/s-turchinskiy/gzipresponse/internal/server/handlers"
	"github.com/s-turchinskiy/gzipresponse/internal/server/logger"
	"github.com/s-turchinskiy/gzipresponse/internal/server/middleware/gzip"
	"github.com/s-turchinskiy/gzipresponse/internal/server/settings"
)

// go run -ldflags "-X main.buildVersion=v1.0.1 -X main.buildDate=20.10.2025 -X main.buildCommit=Comment"
var (
	buildVersion string = "N/A"
	buildDate    string = "N/A"
	buildCommit  string = "N/A"
)

func main() {

	printBuildInfo()

	if err := logger.Initialize(); err != nil {
		log.Fatal(err)
	}

	err := godotenv.Load("./cmd/server/.env")
	if err != nil {
		logger.Log.Debugw("Error loading .env file", "error", err.Error())
	}

	if err := settings.Load(); err != nil {
		logger.Log.Errorw("Get Settings error", "error", err.Error())
		log.Fatal(err)
	}

	if err := run(); err != nil {
		logger.Log.Errorw("Server startup error", "error", err.Error())
		log.Fatal(err)
	}
}

func run() error {

	gz := gzip.NewWithConfig(logger.Log, gzip.Config{
		Level:      settings.Settings.GzipLevel,
		BufferSize: settings.Settings.GzipBufferSize,
		MinLength:  settings.Settings.GzipMinLength,
	})

	router := server.Router(handlers.NewHandler(), gz)

	logger.Log.Infow("Running server", "settings", &settings.Settings)

	return http.ListenAndServe(settings.Settings.Address.String(), router)
}

func printBuildInfo() {

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
