// Command adduser provisions an admin account. The web application has no
// self-registration route; this is the out-of-band path for creating users.
//
//	adduser -username alice -password 'a long passphrase'
package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/celestialmindworks/site-backend/auth"
	"github.com/celestialmindworks/site-backend/config"
	"github.com/celestialmindworks/site-backend/database"
	"github.com/celestialmindworks/site-backend/models"
)

func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		log.Fatal().Msgf("Error connecting to database: %v", err)
	}

	if err := database.InitSchema(db); err != nil {
		log.Fatal().Msgf("DB init failed: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal().Msgf("Error hashing password: %v", err)
	}

	user := &models.User{Username: *username, PasswordHash: hash}
	if err := database.New(db).UserRepo().Create(user); err != nil {
		log.Fatal().Msgf("Error creating user: %v", err)
	}

	log.Info().Str("username", user.Username).Str("id", user.ID.String()).Msg("user created")
}
