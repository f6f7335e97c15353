package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/teamspace/internal/config"
	authctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/health"
	teamctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/teams"
	userctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/users"
	wsctrl "github.com/dropDatabas3/teamspace/internal/http/controllers/workspaces"
	mw "github.com/dropDatabas3/teamspace/internal/http/middlewares"
	"github.com/dropDatabas3/teamspace/internal/http/router"
	authsvc "github.com/dropDatabas3/teamspace/internal/http/services/auth"
	healthsvc "github.com/dropDatabas3/teamspace/internal/http/services/health"
	teamsvc "github.com/dropDatabas3/teamspace/internal/http/services/teams"
	usersvc "github.com/dropDatabas3/teamspace/internal/http/services/users"
	wssvc "github.com/dropDatabas3/teamspace/internal/http/services/workspaces"
	jwtx "github.com/dropDatabas3/teamspace/internal/jwt"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/store"

	httpserver "github.com/dropDatabas3/teamspace/internal/http"
	_ "github.com/dropDatabas3/teamspace/internal/store/pg" // registra el adapter postgres
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "configs/config.example.yaml", "Path to YAML config")
	flag.Parse()

	// .env local si existe; en prod las vars ya vienen del entorno
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "teamspace",
	})
	defer func() { _ = logger.Sync() }()

	lg := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Storage ───
	conn, err := store.OpenAdapter(ctx, store.AdapterConfig{
		Name:         "postgres",
		DSN:          cfg.Storage.DSN,
		MaxOpenConns: cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Storage.Postgres.MaxIdleConns,
	})
	if err != nil {
		lg.Fatal("storage connect failed", logger.Err(err))
	}
	defer func() { _ = conn.Close() }()
	lg.Info("storage connected", logger.String("adapter", conn.Name()))

	// ─── Auth ───
	var issuer *jwtx.Issuer
	if cfg.Auth.Enabled {
		issuer, err = jwtx.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.AccessTTL())
		if err != nil {
			lg.Fatal("jwt issuer init failed", logger.Err(err))
		}
	}

	// ─── Metrics ───
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler, err = mw.RegisterMetrics(nil)
		if err != nil {
			lg.Fatal("metrics init failed", logger.Err(err))
		}
	}

	// ─── Wiring ───
	workspaces := wssvc.New(wssvc.Deps{Workspaces: conn.Workspaces(), Users: conn.Users()})
	teams := teamsvc.New(teamsvc.Deps{Teams: conn.Teams(), Workspaces: conn.Workspaces(), Users: conn.Users()})
	users := usersvc.New(usersvc.Deps{Users: conn.Users()})
	health := healthsvc.New(healthsvc.Deps{Conn: conn})

	deps := router.Deps{
		Workspaces: wsctrl.New(workspaces),
		Teams:      teamctrl.New(teams),
		Users:      userctrl.New(users),
		Health:     healthctrl.New(health),
		Issuer:     issuer,
		Metrics:    metricsHandler,
	}
	if issuer != nil {
		deps.Auth = authctrl.New(authsvc.New(authsvc.Deps{Users: conn.Users(), Issuer: issuer}))
	}

	srv := httpserver.NewServer(cfg.Server.Addr, router.New(deps), cfg.ReadTimeout(), cfg.WriteTimeout())

	// ─── Run ───
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info("http server listening",
			logger.String("addr", cfg.Server.Addr),
			logger.Bool("auth", cfg.Auth.Enabled),
			logger.Bool("metrics", cfg.Metrics.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		lg.Fatal("server exited with error", logger.Err(err))
	}
	lg.Info("bye")
}
