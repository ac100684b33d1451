// @title         smart-resume-backend API
// @version       1.0
// @description   Resume-grounded conversational assistant with scheduling and contact endpoints.
// @BasePath      /api
// @schemes       http
// @host          localhost:10000
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	// internal imports
	"github.com/akunal1/smart-resume-backend/api/http"
	"github.com/akunal1/smart-resume-backend/api/http/handlers"
	"github.com/akunal1/smart-resume-backend/api/http/middleware"
	_ "github.com/akunal1/smart-resume-backend/docs"
	"github.com/akunal1/smart-resume-backend/pkg/assistant"
	"github.com/akunal1/smart-resume-backend/pkg/calendar"
	"github.com/akunal1/smart-resume-backend/pkg/config"
	"github.com/akunal1/smart-resume-backend/pkg/health"
	"github.com/akunal1/smart-resume-backend/pkg/health/checkers"
	"github.com/akunal1/smart-resume-backend/pkg/llm/perplexity"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/mail"
	"github.com/akunal1/smart-resume-backend/pkg/resume"
	"github.com/akunal1/smart-resume-backend/pkg/scheduling"
	"github.com/akunal1/smart-resume-backend/pkg/summary"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The resume is the only data the assistant answers from; without it the
	// service has nothing to serve.
	provider, err := resume.NewProvider(ctx, resume.NewFileStore(cfg.ResumeDataPath))
	if err != nil {
		log.Fatal("load resume", zap.String("path", cfg.ResumeDataPath), zap.Error(err))
	}
	log.Info("resume loaded", zap.String("name", provider.FullName()), zap.Int("context_chars", len(provider.Context())))

	llmClient := perplexity.New(cfg.PerplexityAPIKey, cfg.PerplexityBaseURL, cfg.PerplexityModel, cfg.LLMTimeout)
	if !llmClient.Configured() {
		log.Warn("PERPLEXITY_API_KEY not set, model-routed queries get the demo reply")
	}

	assistantUC := assistant.NewService(llmClient, provider, cfg.PublicBaseURL+"/api/assistant/download", log)
	summaryUC := summary.NewService(llmClient, log)

	mailer := mail.NewChainFromConfig(ctx, cfg.Mail, provider.FullName(), log)
	if len(mailer.Transports()) == 0 {
		log.Warn("no mail transport configured, email routes will fail")
	}
	cal, err := calendar.New(ctx, cfg.Calendar, log)
	if err != nil {
		log.Fatal("init calendar client", zap.Error(err))
	}
	schedulingUC := scheduling.NewService(mailer, cal, scheduling.Owner{Name: provider.FullName(), Email: cfg.OwnerEmail}, log)

	// Rate-limit counters live in Redis when configured, in memory otherwise.
	readinessChecks := []health.Checker{checkers.NewResumeChecker(provider)}
	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		storage, client, err := middleware.NewRedisStorageFromURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("parse REDIS_URL", zap.Error(err))
		}
		defer func() { _ = storage.Close() }()
		limiterStorage = storage
		readinessChecks = append(readinessChecks, checkers.NewRedisChecker(client))
	}
	readiness := health.NewService(readinessChecks...)

	app := fiber.New(fiber.Config{
		AppName:      "smart-resume-backend",
		BodyLimit:    10 << 20,
		ErrorHandler: middleware.ErrorHandler(log, cfg.IsDevelopment()),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Origins(), ","),
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		Storage:    limiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests from this IP, please try again later.")
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Register routes
	http.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewAssistantHandler(assistantUC, cfg.ResumePDFPath, log),
		handlers.NewSummaryHandler(summaryUC),
		handlers.NewSchedulingHandler(schedulingUC),
	)
	app.Use(middleware.NotFound)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("HTTP server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
