package query

import (
    "go.uber.org/zap"
    "net/http"

    "github.com/chainscope/timeline/app/query/controller"
    "github.com/chainscope/timeline/app/query/types"
    "github.com/chainscope/timeline/pkg/utils"
)

// NewServer builds the router behind CORS and stores a new http.Server on app.Server; it does not start it.
func NewServer(app *types.App) error {
    ctler := controller.NewController(app)
    router, err := ctler.NewRouter()
    if err != nil {
        return err
    }

    // use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
    addr := utils.Env("ADDR", ":3001")

    app.Server = &http.Server{Addr: addr, Handler: controller.WithCORS(router)}
    app.Logger.Info("Starting server", zap.String("addr", addr))

    return nil
}
