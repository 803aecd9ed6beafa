package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"

	"github.com/skyline-media/revenue-insights/internal/api"
	"github.com/skyline-media/revenue-insights/internal/pkg/constants"
	"github.com/skyline-media/revenue-insights/internal/pkg/logger"
	"github.com/skyline-media/revenue-insights/internal/pkg/store"
	"github.com/skyline-media/revenue-insights/internal/pkg/store/xpgx"
)

func main() {
	ctx := context.Background()

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperPostgresDSN, "postgres://localhost:5432/revenue_insights")
	viper.SetDefault(constants.ViperSampleDir, "data/sample")
	viper.SetDefault(constants.ViperLogLevel, "info")
	viper.SetEnvPrefix("insights")
	viper.AutomaticEnv()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal(ctx, err)
		}
	}

	logger.Fatal(ctx, logger.Init(viper.GetString(constants.ViperLogLevel)))
	defer logger.Sync()

	pool, err := pgxpool.New(ctx, viper.GetString(constants.ViperPostgresDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10), ctx),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	recordStore := store.NewStore(xpgx.NewPool(pool))

	svc, err := api.NewAPIService(recordStore, viper.GetString(constants.ViperSampleDir))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))
	logger.Infof(ctx, "listening on %s", viper.GetString(constants.ViperListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
