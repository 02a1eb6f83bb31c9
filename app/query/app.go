package query

import (
	"context"

	"github.com/chainscope/timeline/app/query/types"
	"github.com/chainscope/timeline/pkg/aliascache"
	"github.com/chainscope/timeline/pkg/db/clickhouse"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/logging"
	"github.com/chainscope/timeline/pkg/redis"
	"github.com/chainscope/timeline/pkg/utils"
	"go.uber.org/zap"
)

// Initialize wires up the process-wide dependencies: logging, the
// ClickHouse-backed store, and the well-known mosaic alias cache.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New()
	if err != nil {
		panic(err)
	}

	dbName := utils.Env("CLICKHOUSE_DATABASE", "timeline_query")

	client, err := clickhouse.New(ctx, logger, dbName, clickhouse.GetPoolConfigForComponent("query"))
	if err != nil {
		logger.Fatal("unable to connect to clickhouse", zap.Error(err))
	}
	if err := client.CreateDbIfNotExists(ctx, dbName); err != nil {
		logger.Fatal("unable to create database", zap.Error(err))
	}
	if err := client.SwitchToTargetDatabase(ctx); err != nil {
		logger.Fatal("unable to switch to target database", zap.Error(err))
	}

	queryStore := store.New(&client, logger, dbName)

	var redisClient *redis.Client
	if aliascache.RedisEnabled() {
		redisClient, err = redis.NewClient(ctx, logger)
		if err != nil {
			logger.Warn("failed to initialize redis client - alias cache will run without its second tier", zap.Error(err))
			redisClient = nil
		}
	}

	cacheStore, err := aliasCacheStore(ctx, logger, dbName)
	if err != nil {
		logger.Fatal("unable to initialize alias cache store", zap.Error(err))
	}
	cache := aliascache.New(cacheStore, logger, redisClient)
	cache.StartRefresh(ctx)

	return &types.App{
		Store:      queryStore,
		AliasCache: cache,
		Logger:     logger,
	}
}

// aliasCacheStore opens a second, small pool for the alias cache: the
// periodic refresh and the live lookup on a cache miss both use it, so
// they never contend with the request-serving pool
// (pkg/db/clickhouse.GetPoolConfigForComponent "aliascache").
func aliasCacheStore(ctx context.Context, logger *zap.Logger, dbName string) (*store.Store, error) {
	client, err := clickhouse.New(ctx, logger, dbName, clickhouse.GetPoolConfigForComponent("aliascache"))
	if err != nil {
		return nil, err
	}
	if err := client.SwitchToTargetDatabase(ctx); err != nil {
		return nil, err
	}
	return store.New(&client, logger, dbName), nil
}
