package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/savora-app/savora/config"
	"github.com/savora-app/savora/internal/app"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := signalContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	savora := app.New(sigCtx, cfg)

	savora.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	savora.Close(ctx)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
