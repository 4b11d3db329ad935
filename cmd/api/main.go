package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/rose-villa/complaint-service/internal/api/http"
	"github.com/rose-villa/complaint-service/internal/api/http/handlers"
	"github.com/rose-villa/complaint-service/internal/config"
	"github.com/rose-villa/complaint-service/internal/events"
	"github.com/rose-villa/complaint-service/internal/mail/resendmail"
	"github.com/rose-villa/complaint-service/internal/observability"
	"github.com/rose-villa/complaint-service/internal/service"
	"github.com/rose-villa/complaint-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	complaintService := service.NewComplaintService(*cfg, service.ComplaintDependencies{
		Sender:     resendmail.New(cfg.Mail.APIKey),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	// The body limit sits above the attachment cap so the handler, not the
	// framework, enforces the oversize rule.
	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Upload.MaxBytes)*2 + 1<<20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.Site.Name + " Complaint System")
	complaintsHandler := handlers.NewComplaintsHandler(complaintService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     healthHandler,
		Complaints: complaintsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
