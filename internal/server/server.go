package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/emrgen/tinytweet/internal/cache"
	"github.com/emrgen/tinytweet/internal/config"
	"github.com/emrgen/tinytweet/internal/jobs"
	"github.com/emrgen/tinytweet/internal/security"
	"github.com/emrgen/tinytweet/internal/service"
	"github.com/emrgen/tinytweet/internal/store"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Server represents the server
type Server struct {
	httpPort string
}

// NewServer creates a new server
func NewServer(httpPort string) *Server {
	return &Server{
		httpPort: httpPort,
	}
}

// Start starts the server
func (s *Server) Start() {
	if err := Start(s.httpPort); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// Start wires the stores, services and jobs and serves the HTTP API until
// interrupted.
func Start(httpPort string) error {
	httpPort = ":" + httpPort

	cnf := config.LoadConfig()
	db := config.GetDb(cnf)

	gormStore := store.NewGormStore(db)
	if err := gormStore.Migrate(); err != nil {
		return err
	}

	var engagementCache cache.EngagementCache
	redisCache, err := cache.NewRedis(cnf.RedisAddr)
	if err != nil {
		logrus.Warnf("redis unavailable, like counts are uncached: %v", err)
		engagementCache = cache.NewNop()
	} else {
		engagementCache = redisCache
	}

	hasher := security.NewArgon2Hasher(nil)

	accounts := service.NewAccountService(gormStore, hasher)
	follows := service.NewFollowService(gormStore)
	engagement := service.NewEngagementService(gormStore, engagementCache)
	tweets := service.NewTweetService(gormStore)
	queries := service.NewQueryService(gormStore)

	executor := jobs.NewTaskExecutor(nil, []jobs.CronJob{
		jobs.NewCountSync(gormStore, engagementCache),
	})
	executor.Run()
	defer executor.Stop()

	router := newRouter(&handler{
		accounts:   accounts,
		follows:    follows,
		engagement: engagement,
		tweets:     tweets,
		queries:    queries,
		sessions:   newSessionStore(),
	})

	httpServer := &http.Server{
		Addr:    httpPort,
		Handler: cors.AllowAll().Handler(router),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("http server listening on %s", httpPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logrus.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
