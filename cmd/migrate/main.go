package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"fundly/internal/infra"
	"fundly/internal/sqlinline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	for i, stmt := range sqlinline.Schema {
		if _, err := dbpool.Exec(ctx, sqlinline.Text(stmt)); err != nil {
			logger.Fatal().Err(err).Int("statement", i).Msg("migration failed")
		}
	}
	logger.Info().Int("statements", len(sqlinline.Schema)).Msg("schema up to date")
}
