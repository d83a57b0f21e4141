package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestialmindworks/site-backend/api"
	"github.com/celestialmindworks/site-backend/config"
	"github.com/celestialmindworks/site-backend/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SECRET_KEY is not set")
	}

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Msgf("Error connecting to database: %v", err)
	}

	// Create the schema if it is absent. A failure here is logged and the
	// process keeps serving: the public pages still work without the store.
	if err := database.InitSchema(db); err != nil {
		log.Error().Msgf("DB init failed: %v", err)
	}

	currentDB := database.New(db)

	server, err := api.NewServer(cfg, currentDB)
	if err != nil {
		log.Fatal().Msgf("Error initializing server: %v", err)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func openDatabase(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 gormLogger,
	})
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to
// the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
