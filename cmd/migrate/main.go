package main

import (
	"neodrive/config"
	"neodrive/helper"
	"neodrive/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

var actions = map[string]func(*config.Config) error{
	"up":      helper.Up,
	"down":    helper.Down,
	"step-up": helper.StepUp,
	"drop":    helper.Drop,
}

// Applies the index migrations under migrations/mongodb to the configured database.
func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up or drop")
	}

	action, ok := actions[os.Args[1]]
	if !ok {
		log.Fatal().Str("action", os.Args[1]).Msg("Invalid action. Use 'up', 'down', 'step-up' or 'drop'")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := action(cfg); err != nil {
		log.Fatal().Err(err).Str("database", cfg.DB.Mongo.Database).Msg("Migration failed")
	}
}
