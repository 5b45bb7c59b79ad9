// The seed command fills the database with the snack pool's initial
// families and catalog. It is safe to run repeatedly.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/snackpool/backend/internal/models"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	err := models.Connect("")
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	err = models.Seed(models.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("database seeded")
}
