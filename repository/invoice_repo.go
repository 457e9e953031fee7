package repository

import (
	"context"

	"invoice-dashboard/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ItemsPerPage is the page size of the invoices table.
const ItemsPerPage = 6

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InsertInvoice stores a new invoice; amount is in cents and date is YYYY-MM-DD.
func (r *InvoiceRepository) InsertInvoice(ctx context.Context, customerID string, amount int64, status, date string) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO invoices (customer_id, amount, status, date) VALUES (?, ?, ?, ?)`,
		customerID, amount, status, date,
	).Error
	return wrap("insert invoice", err)
}

// UpdateInvoice replaces the customer, amount and status of invoice id.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, id, customerID string, amount int64, status string) error {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?`,
		customerID, amount, status, id,
	).Error
	return wrap("update invoice", err)
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Exec(`DELETE FROM invoices WHERE id = ?`, id).Error
	return wrap("delete invoice", err)
}

// FetchInvoiceByID returns ErrNotFound when no invoice has the given id.
func (r *InvoiceRepository) FetchInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?`, id,
	).Scan(&invoices).Error
	if err != nil {
		return nil, wrap("fetch invoice", err)
	}
	if len(invoices) == 0 {
		return nil, ErrNotFound
	}
	return &invoices[0], nil
}

const filteredInvoicesWhere = `
	FROM invoices
	JOIN customers ON invoices.customer_id = customers.id
	WHERE
		customers.name ILIKE ? OR
		customers.email ILIKE ? OR
		invoices.amount::text ILIKE ? OR
		invoices.date::text ILIKE ? OR
		invoices.status ILIKE ?`

func likeArgs(query string) []any {
	pattern := "%" + query + "%"
	return []any{pattern, pattern, pattern, pattern, pattern}
}

// FetchFilteredInvoices returns one page (1-based) of invoices whose
// customer, amount, date or status matches query, newest first.
func (r *InvoiceRepository) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoiceRow, error) {
	if currentPage < 1 {
		currentPage = 1
	}
	offset := (currentPage - 1) * ItemsPerPage
	args := append(likeArgs(query), ItemsPerPage, offset)

	var rows []models.InvoiceRow
	err := r.db.WithContext(ctx).Raw(`
	SELECT
		invoices.id,
		invoices.customer_id,
		invoices.amount,
		invoices.date,
		invoices.status,
		customers.name,
		customers.email,
		customers.image_url`+filteredInvoicesWhere+`
	ORDER BY invoices.date DESC
	LIMIT ? OFFSET ?`, args...).Scan(&rows).Error
	return rows, wrap("fetch invoices", err)
}

// FetchInvoicesPages returns how many pages FetchFilteredInvoices has for query.
func (r *InvoiceRepository) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filteredInvoicesWhere, likeArgs(query)...).Scan(&count).Error
	if err != nil {
		return 0, wrap("count invoices", err)
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage), nil
}

// FetchLatestInvoices returns the five most recent invoices.
func (r *InvoiceRepository) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	var rows []models.LatestInvoice
	err := r.db.WithContext(ctx).Raw(`
	SELECT invoices.amount, customers.name, customers.image_url, customers.email, invoices.id
	FROM invoices
	JOIN customers ON invoices.customer_id = customers.id
	ORDER BY invoices.date DESC
	LIMIT 5`).Scan(&rows).Error
	return rows, wrap("fetch latest invoices", err)
}

type invoiceTotals struct {
	Paid    int64
	Pending int64
}

// FetchCardData runs the dashboard counters concurrently.
func (r *InvoiceRepository) FetchCardData(ctx context.Context) (models.CardData, error) {
	var (
		data   models.CardData
		totals invoiceTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Raw(`SELECT COUNT(*) FROM invoices`).Scan(&data.NumberOfInvoices).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Raw(`SELECT COUNT(*) FROM customers`).Scan(&data.NumberOfCustomers).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`).Scan(&totals).Error
	})
	if err := g.Wait(); err != nil {
		return models.CardData{}, wrap("fetch card data", err)
	}
	data.TotalPaidInvoices = totals.Paid
	data.TotalPendingInvoices = totals.Pending
	return data, nil
}

// FetchRevenue returns the revenue chart months in calendar order.
func (r *InvoiceRepository) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	var rows []models.Revenue
	err := r.db.WithContext(ctx).Raw(`
	SELECT month, revenue FROM revenue
	ORDER BY array_position(ARRAY['Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec'], month::text)`).
		Scan(&rows).Error
	return rows, wrap("fetch revenue", err)
}
