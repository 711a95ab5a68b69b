package main

import (
	"github.com/pulseprimer/ecg_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title PulsePrimer ECG API
// @version 1.0
// @description Lesson catalog, slide progression and assessment grading for the PulsePrimer ECG trainer.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment")
	}

	ctx, err := context.NewCtx(
		&services.ContentStoreService{},
		&services.RedisService{},
		&services.MinIOService{},

		&services.RegistryService{},
		&services.ContentService{},
		&services.ProgressService{},
		&services.MediaService{},

		&services.MonitoringService{},
		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
