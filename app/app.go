package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jekabolt/affiliate-dashboard/config"
	httpapi "github.com/jekabolt/affiliate-dashboard/internal/api/http"
	"github.com/jekabolt/affiliate-dashboard/internal/auth/jwt"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jekabolt/affiliate-dashboard/internal/report"
	"github.com/jekabolt/affiliate-dashboard/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
	once sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting affiliate dashboard")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to database", slog.String("err", err.Error()))
		return err
	}
	a.db = db

	engine, err := report.New(&a.c.Report, db.Reports(), nil)
	if err != nil {
		a.db.Close()
		return fmt.Errorf("can't create report engine: %w", err)
	}

	ja, err := jwt.New(&a.c.Auth)
	if err != nil {
		a.db.Close()
		return fmt.Errorf("can't create token verifier: %w", err)
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, engine, a.db, ja)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		a.db.Close()
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", slog.String("err", err.Error()))
		}
		<-a.hs.Done()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
