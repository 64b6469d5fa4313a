package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/printadmin/storformat/internal/api"
	"github.com/printadmin/storformat/internal/pkg/cache"
	"github.com/printadmin/storformat/internal/pkg/config"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/events"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/pkg/store"
	"github.com/printadmin/storformat/internal/pkg/store/xpgx"
	"github.com/printadmin/storformat/internal/service/storformat"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := pflag.String("config", "config.yaml", "path to the yaml config file")
	dotenvPath := pflag.String("env", ".env", "path to the .env file")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := logger.Init("info"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Load(*dotenvPath, *configPath); err != nil {
		logger.Fatal(ctx, err)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevelKey)); err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := xpgx.Connect(ctx, viper.GetString(constants.ViperPostgresDSNKey), viper.GetUint64(constants.ViperPostgresRetriesKey))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	if viper.GetBool(constants.ViperMigrationsEnabledKey) {
		if err := store.Migrate(ctx, pool); err != nil {
			logger.Fatal(ctx, err)
		}
	}

	quoteCache, closeCache := newQuoteCache(ctx)
	defer closeCache()

	publisher := newPublisher(ctx)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorf(ctx, "close publisher: %v", err)
		}
	}()

	svc := storformat.NewStorformatService(store.NewStore(pool), quoteCache, publisher, config.PricingDefaults())
	apiService, err := api.NewAPIService(svc)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiService.Serve(viper.GetString(constants.ViperServerAddrKey))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorf(ctx, "api stopped: %v", err)
		}
	case <-ctx.Done():
		logger.Info(ctx, "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "api shutdown: %v", err)
	}
}

func newQuoteCache(ctx context.Context) (cache.QuoteCache, func()) {
	ttl := viper.GetDuration(constants.ViperCacheTTLKey)
	if !viper.GetBool(constants.ViperRedisEnabledKey) {
		return cache.NewMemory(ttl), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     viper.GetString(constants.ViperRedisAddrKey),
		Password: viper.GetString(constants.ViperRedisPasswordKey),
		DB:       viper.GetInt(constants.ViperRedisDBKey),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warnf(ctx, "redis unavailable, quotes cached in memory: %v", err)
		_ = rdb.Close()
		return cache.NewMemory(ttl), func() {}
	}

	return cache.NewRedis(rdb, ttl), func() { _ = rdb.Close() }
}

func newPublisher(ctx context.Context) events.Publisher {
	if !viper.GetBool(constants.ViperKafkaEnabledKey) {
		return events.NopPublisher{}
	}

	brokers := config.StringSlice(constants.ViperKafkaBrokersKey)
	logger.Infof(ctx, "publishing catalog events to %v", brokers)
	return events.NewKafkaPublisher(brokers, viper.GetString(constants.ViperKafkaTopicKey))
}
