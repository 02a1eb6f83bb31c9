package types

import (
	"context"
	"net/http"
	"time"

	"github.com/chainscope/timeline/pkg/aliascache"
	"github.com/chainscope/timeline/pkg/db/store"
	"go.uber.org/zap"
)

// App holds the process-wide dependencies the route handler closes over:
// a single ClickHouse-backed store, the well-known mosaic alias cache,
// the logger, and the HTTP server itself.
type App struct {
	Store      *store.Store
	AliasCache *aliascache.Cache
	Logger     *zap.Logger
	Server     *http.Server
}

// Start runs the HTTP server until ctx is cancelled, then stops the alias
// cache refresh, closes the request-serving store, and shuts the server
// down. The alias cache's own store pool and Redis client are not closed.
func (a *App) Start(ctx context.Context) {
	go func() { _ = a.Server.ListenAndServe() }()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.AliasCache.Stop()

	if err := a.Store.Close(); err != nil {
		a.Logger.Error("failed to close store connection", zap.Error(err))
	}

	_ = a.Server.Shutdown(shutdownCtx)
	time.Sleep(200 * time.Millisecond)
	a.Logger.Info("さようなら!")
}
