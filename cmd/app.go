package cmd

import (
	"log/slog"

	"invoice-dashboard/config"
	"invoice-dashboard/controllers"
	"invoice-dashboard/repository"
	"invoice-dashboard/routes"
	"invoice-dashboard/services"
	"invoice-dashboard/utils"

	"gorm.io/gorm"
)

const viewCacheSize = 128

// app holds the wired components shared by serve and seed.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *gorm.DB
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	users     *repository.UserRepository
	views     *services.ViewCache
	actions   *services.InvoiceActions
	seeder    *services.Seeder
}

func newApp(cfg config.Config) (*app, error) {
	logger := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	invoices := repository.NewInvoiceRepository(db)
	views := services.NewViewCache(viewCacheSize)
	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		invoices:  invoices,
		customers: repository.NewCustomerRepository(db),
		users:     repository.NewUserRepository(db),
		views:     views,
		actions:   services.NewInvoiceActions(invoices, views, logger),
		seeder:    services.NewSeeder(repository.NewGateway(db), services.DemoData, cfg.BcryptCost, views, logger),
	}, nil
}

func (a *app) handlers(auth *utils.Authenticator) routes.Handlers {
	return routes.Handlers{
		Auth:      controllers.NewAuthController(a.users, auth),
		Seed:      controllers.NewSeedController(a.seeder),
		Invoices:  controllers.NewInvoiceController(a.actions, a.invoices, a.customers, a.views),
		Customers: controllers.NewCustomerController(a.customers),
		Dashboard: controllers.NewDashboardController(a.invoices),
	}
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}
