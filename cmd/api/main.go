package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"customerlist/docs"
	"customerlist/internal/config"
	handlers "customerlist/internal/http/handler"
	"customerlist/internal/http/middleware"
	"customerlist/internal/logging"
	"customerlist/internal/otel"
	"customerlist/internal/repository/shopify"
	"customerlist/internal/service"
)

// @title Customer List API
// @version 1.0
// @description Read-only customer listing backed by the Shopify Admin API.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.Default(loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("tracing_init_failed", err, nil)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	upstreamMetrics, err := shopify.NewMetrics(reg)
	if err != nil {
		log.Error("metrics_init_failed", err, nil)
		os.Exit(1)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("metrics_init_failed", err, nil)
		os.Exit(1)
	}

	// Missing credentials do not stop the server: every list call answers 500
	// and /health reports 503 until the process is restarted with them set.
	customerRepo := shopify.NewCustomerShopify(cfg.Shopify, shopify.WithMetrics(upstreamMetrics))
	if err := customerRepo.ConfigErr(); err != nil {
		log.Error("shopify_config_invalid", err, nil)
	}
	customerSvc := service.NewCustomerService(customerRepo, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(httpMetrics.Handler())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	if cfg.SwaggerEnabled {
		// Swagger UI with dynamic host and scheme
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	handlers.RegisterRoutes(app, customerSvc, func(context.Context) error {
		return customerRepo.ConfigErr()
	}, loc)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", map[string]any{"addr": addr, "app_host": cfg.AppHost})
		errCh <- app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", err, nil)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", err, nil)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}
	log.Info("server_stopped", nil)
}
