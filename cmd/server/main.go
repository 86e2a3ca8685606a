package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "rentacar-backend/internal/api/http"
	"rentacar-backend/internal/config"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/jobs"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository/postgres"
	"rentacar-backend/internal/scheduler"
	"rentacar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent-a-Car Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SMTP.Host == "" {
		logger.Info("SMTP not configured, booking confirmations disabled")
		emailSvc = service.NewNoopEmailService()
	} else {
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	// Initialize Services
	gen := generator.New()
	companySvc := service.NewCompanyService(store.CompanyRepository, store.CarRepository, gen)
	carSvc := service.NewCarService(store.CarRepository, store.CompanyRepository, store.CustomerRepository, store.RentalRepository, emailSvc, gen)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.RentalRepository, gen)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CustomerRepository, store.CarRepository, gen)

	// Initialize HTTP handlers
	companyHandler := httpapi.NewCompanyHandler(companySvc)
	carHandler := httpapi.NewCarHandler(carSvc)
	customerHandler := httpapi.NewCustomerHandler(customerSvc)
	rentalHandler := httpapi.NewRentalHandler(rentalSvc)

	router := httpapi.NewRouter(companyHandler, carHandler, customerHandler, rentalHandler, cfg.CORS.AllowedOrigin)

	// Start the fleet-report scheduler alongside the server
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(jobs.NewJobRunner(store, cfg))
		sched.Start()
		defer sched.Stop()
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
