// Command seed populates a demo database with generated entities, in
// dependency order: companies first, then customers and cars, then rentals.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"rentacar-backend/internal/config"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/jobs"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository/postgres"
	"rentacar-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	companies := flag.Int("companies", 10, "Number of companies to generate")
	customers := flag.Int("customers", 25, "Number of customers to generate")
	cars := flag.Int("cars", 50, "Number of cars to generate")
	rentals := flag.Int("rentals", 40, "Number of rentals to generate")
	report := flag.Bool("report", false, "Print a fleet report after seeding")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Seeding demo data", "companies", *companies, "customers", *customers, "cars", *cars, "rentals", *rentals)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	gen := generator.New()
	companySvc := service.NewCompanyService(store.CompanyRepository, store.CarRepository, gen)
	carSvc := service.NewCarService(store.CarRepository, store.CompanyRepository, store.CustomerRepository, store.RentalRepository, service.NewNoopEmailService(), gen)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.RentalRepository, gen)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CustomerRepository, store.CarRepository, gen)

	ctx := context.Background()
	if *companies > 0 {
		if err := companySvc.GenerateCompanies(ctx, int32(*companies)); err != nil {
			log.Fatalf("Failed to generate companies: %v", err)
		}
	}
	if *customers > 0 {
		if err := customerSvc.GenerateCustomers(ctx, int32(*customers)); err != nil {
			log.Fatalf("Failed to generate customers: %v", err)
		}
	}
	if *cars > 0 {
		if err := carSvc.GenerateCars(ctx, int32(*cars)); err != nil {
			log.Fatalf("Failed to generate cars: %v", err)
		}
	}
	if *rentals > 0 {
		if err := rentalSvc.GenerateRentals(ctx, int32(*rentals)); err != nil {
			log.Fatalf("Failed to generate rentals: %v", err)
		}
	}

	logger.Info("Seeding complete")

	if *report {
		jobs.NewJobRunner(store, cfg).FleetReport()
	}
}
