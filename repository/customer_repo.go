package repository

import (
	"context"

	"invoice-dashboard/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FetchCustomers lists every customer by name for the invoice form.
func (r *CustomerRepository) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	var rows []models.CustomerField
	err := r.db.WithContext(ctx).Raw(`SELECT id, name FROM customers ORDER BY name ASC`).Scan(&rows).Error
	return rows, wrap("fetch customers", err)
}

// FetchFilteredCustomers returns customers whose name or email matches
// query, with their invoice count and paid/pending totals.
func (r *CustomerRepository) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomerSummary, error) {
	pattern := "%" + query + "%"
	var rows []models.CustomerSummary
	err := r.db.WithContext(ctx).Raw(`
	SELECT
		customers.id,
		customers.name,
		customers.email,
		customers.image_url,
		COUNT(invoices.id) AS total_invoices,
		COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
	FROM customers
	LEFT JOIN invoices ON customers.id = invoices.customer_id
	WHERE
		customers.name ILIKE ? OR
		customers.email ILIKE ?
	GROUP BY customers.id, customers.name, customers.email, customers.image_url
	ORDER BY customers.name ASC`, pattern, pattern).Scan(&rows).Error
	return rows, wrap("fetch filtered customers", err)
}
