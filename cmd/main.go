package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/avolkov/webauth/config"
	"github.com/avolkov/webauth/db"
	"github.com/avolkov/webauth/internal/auth/handler"
	repo "github.com/avolkov/webauth/internal/auth/repository/postgres"
	"github.com/avolkov/webauth/internal/auth/service"
	"github.com/avolkov/webauth/internal/csrf"
	"github.com/avolkov/webauth/internal/logging"
	"github.com/avolkov/webauth/internal/mailer"
	"github.com/avolkov/webauth/internal/ratelimit"
	"github.com/avolkov/webauth/internal/session"
)

func main() {
	cfg := config.Load()
	log := logging.NewJSONLogger()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Error(ctx, "failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	memoryLimiter := ratelimit.NewMemoryLimiter()
	memoryLimiter.StartSweeping(ctx, cfg.LimiterSweepInterval)

	var limiter ratelimit.Limiter
	var sessionStore session.Store

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewFallbackLimiter(ratelimit.NewRedisLimiter(rdb), memoryLimiter, log)
		sessionStore = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		log.Warn(ctx, "REDIS_ADDR not set, rate limits and sessions are process-local")
		limiter = ratelimit.NewFallbackLimiter(nil, memoryLimiter, log)
		sessionStore = session.NewMemoryStore()
	}

	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTPMailer(cfg)
	} else {
		log.Warn(ctx, "SMTP_HOST not set, password reset links are logged instead of mailed")
		m = mailer.NewLogMailer(log, cfg.ResetURLBase)
	}

	userRepo := repo.NewPostgresRepository(pool)
	userService := service.NewUserService(userRepo, m, log, cfg)
	sessions := session.NewManager(sessionStore, cfg.SessionCookieName, cfg.SessionTTL, cfg.CookieSecure)
	guard := csrf.NewGuard(sessionStore)

	authHandler := handler.NewAuthHandler(userService, sessions, guard, limiter, cfg, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Info(ctx, "starting server", "port", cfg.Port)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
