package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mexidense/la-mar-sala-resort/internal/logger"
	"github.com/Mexidense/la-mar-sala-resort/internal/migration"
	"github.com/Mexidense/la-mar-sala-resort/internal/storage/memory"
	"github.com/Mexidense/la-mar-sala-resort/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	storage := memory.New(memory.Config{L: l.WithScope("storage")})

	if err := migration.Up(l.WithScope("migration"), storage); err != nil {
		return fmt.Errorf("seed resort roster: %w", err)
	}

	webConf := web.Conf{
		L:                 l.WithScope("web"),
		ServerLogger:      log.Default(),
		Host:              "localhost",
		Port:              "8092",
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
		ResortName:        migration.ResortName,
	}

	srv, err := web.New(ctx, webConf, storage, web.NewMetrics())
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
