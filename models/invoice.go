package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice amounts are integer cents; Status is "pending" or "paid".
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null" json:"customer_id"`
	Amount     int64          `gorm:"type:int;not null" json:"amount"`
	Status     string         `gorm:"type:varchar(255);not null" json:"status"`
	Date       datatypes.Date `gorm:"not null" json:"date"`
}

// InvoiceRow is an invoice joined with its customer, as listed in the
// invoices table.
type InvoiceRow struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
}

// LatestInvoice is one entry of the dashboard's most recent invoices card.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   int64     `json:"amount"`
}

// CardData holds the dashboard summary counters. Totals are in cents.
type CardData struct {
	NumberOfInvoices     int64 `json:"numberOfInvoices"`
	NumberOfCustomers    int64 `json:"numberOfCustomers"`
	TotalPaidInvoices    int64 `json:"totalPaidInvoices"`
	TotalPendingInvoices int64 `json:"totalPendingInvoices"`
}
