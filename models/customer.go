package models

import (
	"github.com/google/uuid"
)

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null" json:"email"`
	ImageURL string    `gorm:"type:varchar(255);not null" json:"image_url"`
}

// CustomerField is the id/name pair offered by the invoice form's customer picker.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerSummary is a customers-table row with per-customer invoice totals in cents.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}
