package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/savora-app/savora/config"
	"github.com/savora-app/savora/internal/adapter/catalog"
	"github.com/savora-app/savora/internal/adapter/httphandler"
	"github.com/savora-app/savora/internal/adapter/storage"
	"github.com/savora-app/savora/internal/core/port"
	"github.com/savora-app/savora/internal/core/service"
)

type coreServices struct {
	catalog   port.CatalogReader
	wishlists port.WishlistTracker
	settings  port.SettingsManager
	resetter  port.AppResetter
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	kv         storage.LevelDB
	services   coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	kv, err := storage.OpenLevelDB(app.cfg.DataDir)
	if err != nil {
		app.fallDown(op, err)
	}
	app.kv = kv
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	stateRepo, err := storage.NewStateRepository(app.kv)
	if err != nil {
		app.fallDown(op, err)
	}

	wishlists := service.NewWishlistService(stateRepo)
	settings := service.NewSettingsService(stateRepo)

	app.services = coreServices{
		catalog:   service.NewCatalogService(catalog.NewFixture()),
		wishlists: wishlists,
		settings:  settings,
		resetter:  service.NewResetService(wishlists, settings),
	}
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterWishlists(mux, app.services.wishlists, app.services.catalog)
	httphandler.RegisterSettings(mux, app.services.settings, app.services.resetter)

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, mux)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.kv.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
