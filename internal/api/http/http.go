package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jekabolt/affiliate-dashboard/internal/middleware"
	"github.com/jekabolt/affiliate-dashboard/internal/ratelimit"
	"github.com/jekabolt/affiliate-dashboard/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	reporter dependency.Reporter
	repo     dependency.Repository
	ja       *jwtauth.JWTAuth
	limiter  *ratelimit.MultiKeyLimiter
	done     chan struct{}
}

// New creates a new server
func New(c *Config, reporter dependency.Reporter, repo dependency.Repository, ja *jwtauth.JWTAuth) *Server {
	return &Server{
		c:        c,
		reporter: reporter,
		repo:     repo,
		ja:       ja,
		limiter:  ratelimit.NewMultiKeyLimiter(c.RateLimit),
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the router with every route and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.ClientIdentifier)
	r.Use(log.RequestLogger(slog.Default()))
	if s.c.RequestTimeout > 0 {
		r.Use(chimw.Timeout(s.c.RequestTimeout))
	}

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.ja))
		r.Use(jwtauth.Authenticator)

		r.Get("/dashboard", s.publisherDashboard)
		r.Get("/admin/dashboard", s.platformDashboard)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "affiliate dashboard listening", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error", slog.String("err", err.Error()))
	}()

	return nil
}

// Stop gracefully shuts the server down and releases the rate limiters.
func (s *Server) Stop(ctx context.Context) error {
	s.limiter.Stop()
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	return slices.Contains(allowedOrigins, origin)
}
