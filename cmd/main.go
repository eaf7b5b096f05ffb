package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/postgres"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/rabbitmq"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/app/catalog"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/app/order"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/app/report"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/config"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	amqpAdapter "github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/amqp"
	httpAdapter "github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: pos-service, report-service, kitchen-display, migrate")
	port := flag.Int("port", 3000, "HTTP port")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	prefetch := flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	lgr := logger.New(*mode)

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	switch *mode {
	case "pos-service":
		mqConn := connectRabbitMQ(cfg, lgr)
		defer mqConn.Close()
		runPOSService(db, mqConn, lgr, *port)

	case "report-service":
		runReportService(db, lgr, *port)

	case "kitchen-display":
		mqConn := connectRabbitMQ(cfg, lgr)
		defer mqConn.Close()
		runKitchenDisplay(ctx, mqConn, lgr, *prefetch)

	case "migrate":
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		lgr.Info("migrations_applied", "Database schema is up to date", "startup", nil)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

// noopPublisher backs the report service's read-only order access; nothing
// it serves ever places an order.
type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(ctx context.Context, msg interfaces.OrderPlacedMessage) error {
	return nil
}

func connectRabbitMQ(cfg *config.Config, lgr logger.Logger) rabbitmq.Connection {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})
	return mqConn
}

func runPOSService(db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, port int) {
	orderRepo := postgres.NewOrderRepository(db)
	sizeRepo := postgres.NewSizeRepository(db)
	itemRepo := postgres.NewMenuItemRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)

	orderService := order.NewService(orderRepo, sizeRepo, publisher, lgr)
	catalogService := catalog.NewService(sizeRepo, itemRepo, lgr)

	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	catalogHandler := httpAdapter.NewCatalogHandler(catalogService, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/orders", orderHandler.HandleOrders)
	mux.HandleFunc("/orders/", orderHandler.HandleOrderByID)
	mux.HandleFunc("/customers/", orderHandler.HandleCustomerOrders)
	mux.HandleFunc("/sizes", catalogHandler.HandleSizes)
	mux.HandleFunc("/sizes/", catalogHandler.HandleSizeByID)
	mux.HandleFunc("/menu-items", catalogHandler.HandleMenuItems)
	mux.HandleFunc("/menu-items/", catalogHandler.HandleMenuItemByID)

	serveHTTP(mux, lgr, port, "POS Service")
}

func runReportService(db postgres.DB, lgr logger.Logger, port int) {
	reportRepo := postgres.NewReportRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	sizeRepo := postgres.NewSizeRepository(db)

	reportService := report.NewService(reportRepo, lgr)
	// Read-only order access for the manager dashboards.
	orderService := order.NewService(orderRepo, sizeRepo, noopPublisher{}, lgr)

	reportHandler := httpAdapter.NewReportHandler(reportService, lgr)
	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/reports/sales", reportHandler.HandleSalesReport)
	mux.HandleFunc("/orders", orderHandler.HandleOrders)
	mux.HandleFunc("/orders/", orderHandler.HandleOrderByID)
	mux.HandleFunc("/customers/", orderHandler.HandleCustomerOrders)

	serveHTTP(mux, lgr, port, "Report Service")
}

func runKitchenDisplay(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger, prefetch int) {
	consumer := rabbitmq.NewConsumer(mqConn, prefetch, lgr)
	kitchenHandler := amqpAdapter.NewKitchenHandler(lgr)

	lgr.Info("service_started", "Kitchen Display started", "startup", nil)

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeOrderPlaced(consumeCtx, kitchenHandler.HandleOrderPlaced); err != nil {
			lgr.Error("consumer_error", "Error consuming orders", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Kitchen Display", "shutdown", nil)
}

func serveHTTP(mux *http.ServeMux, lgr logger.Logger, port int, name string) {
	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("%s started on port %d", name, port), "startup", map[string]interface{}{
		"port": port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", fmt.Sprintf("Shutting down %s", name), "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
