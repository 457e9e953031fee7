// services/seed_service.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"invoice-dashboard/repository"
	"invoice-dashboard/utils"

	"golang.org/x/sync/errgroup"
)

// SeedingError names the provisioning step that aborted a seed run.
type SeedingError struct {
	Step string
	Err  error
}

func (e *SeedingError) Error() string {
	return "seed " + e.Step + ": " + e.Err.Error()
}

func (e *SeedingError) Unwrap() error { return e.Err }

// Seeder provisions the dashboard tables and demo rows in one transaction.
type Seeder struct {
	db     repository.Transactor
	data   SeedData
	cost   int
	views  Invalidator
	logger *slog.Logger
}

func NewSeeder(db repository.Transactor, data SeedData, bcryptCost int, views Invalidator, logger *slog.Logger) *Seeder {
	if bcryptCost <= 0 {
		bcryptCost = utils.DefaultBcryptCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, data: data, cost: bcryptCost, views: views, logger: logger}
}

type seedStep struct {
	name string
	run  func(ctx context.Context, tx repository.Executor) error
}

// Run provisions users, customers, invoices and revenue, then removes
// duplicate invoices. Any failing step rolls the whole run back.
func (s *Seeder) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		seedDuration.Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "failed"
		}
		seedRunsTotal.WithLabelValues(outcome).Inc()
	}()

	hashed, err := s.hashPasswords(ctx)
	if err != nil {
		return &SeedingError{Step: "users", Err: err}
	}

	steps := []seedStep{
		{"users", func(ctx context.Context, tx repository.Executor) error { return s.seedUsers(ctx, tx, hashed) }},
		{"customers", s.seedCustomers},
		{"invoices", s.seedInvoices},
		{"revenue", s.seedRevenue},
		{"dedupe", s.deleteDuplicateInvoices},
	}

	err = s.db.InTransaction(ctx, func(tx repository.Executor) error {
		for _, step := range steps {
			if err := step.run(ctx, tx); err != nil {
				return &SeedingError{Step: step.name, Err: err}
			}
			s.logger.Debug("seed step complete", "step", step.name)
		}
		return nil
	})
	if err != nil {
		var seedErr *SeedingError
		if !errors.As(err, &seedErr) {
			err = &SeedingError{Step: "commit", Err: err}
		}
		s.logger.Error("seeding rolled back", "error", err)
		return err
	}

	if s.views != nil {
		s.views.Invalidate(InvoicesPath)
	}
	s.logger.Info("database seeded",
		"users", len(s.data.Users),
		"customers", len(s.data.Customers),
		"invoices", len(s.data.Invoices),
		"revenue", len(s.data.Revenue),
		"elapsed", time.Since(start))
	return nil
}

// hashPasswords runs outside the transaction so bcrypt does not hold it open.
func (s *Seeder) hashPasswords(ctx context.Context) ([]string, error) {
	hashed := make([]string, len(s.data.Users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, user := range s.data.Users {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := utils.HashPassword(user.Password, s.cost)
			if err != nil {
				return err
			}
			hashed[i] = h
			return nil
		})
	}
	return hashed, g.Wait()
}

func (s *Seeder) seedUsers(ctx context.Context, tx repository.Executor, hashed []string) error {
	if err := ensureTable(ctx, tx, repository.CreateUsersTable); err != nil {
		return err
	}
	rows := make([][]any, len(s.data.Users))
	for i, u := range s.data.Users {
		rows[i] = []any{u.ID, u.Name, u.Email, hashed[i]}
	}
	return fanOut(ctx, tx, repository.InsertUser, rows)
}

func (s *Seeder) seedCustomers(ctx context.Context, tx repository.Executor) error {
	if err := ensureTable(ctx, tx, repository.CreateCustomersTable); err != nil {
		return err
	}
	rows := make([][]any, len(s.data.Customers))
	for i, c := range s.data.Customers {
		rows[i] = []any{c.ID, c.Name, c.Email, c.ImageURL}
	}
	return fanOut(ctx, tx, repository.InsertCustomer, rows)
}

func (s *Seeder) seedInvoices(ctx context.Context, tx repository.Executor) error {
	if err := ensureTable(ctx, tx, repository.CreateInvoicesTable); err != nil {
		return err
	}
	rows := make([][]any, len(s.data.Invoices))
	for i, inv := range s.data.Invoices {
		rows[i] = []any{inv.ID(), inv.CustomerID, inv.Amount, inv.Status, inv.Date}
	}
	return fanOut(ctx, tx, repository.InsertInvoice, rows)
}

func (s *Seeder) seedRevenue(ctx context.Context, tx repository.Executor) error {
	if err := tx.Exec(ctx, repository.CreateRevenueTable); err != nil {
		return err
	}
	rows := make([][]any, len(s.data.Revenue))
	for i, r := range s.data.Revenue {
		rows[i] = []any{r.Month, r.Revenue}
	}
	return fanOut(ctx, tx, repository.InsertRevenue, rows)
}

func (s *Seeder) deleteDuplicateInvoices(ctx context.Context, tx repository.Executor) error {
	return tx.Exec(ctx, repository.DeleteDuplicateInvoices)
}

func ensureTable(ctx context.Context, tx repository.Executor, ddl string) error {
	if err := tx.Exec(ctx, repository.CreateUUIDExtension); err != nil {
		return err
	}
	return tx.Exec(ctx, ddl)
}

// fanOut issues one insert per row concurrently against the same transaction.
func fanOut(ctx context.Context, tx repository.Executor, query string, rows [][]any) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, args := range rows {
		g.Go(func() error {
			return tx.Exec(gctx, query, args...)
		})
	}
	return g.Wait()
}
