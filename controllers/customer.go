package controllers

import (
	"net/http"

	"invoice-dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerController struct {
	customers CustomerReader
}

func NewCustomerController(customers CustomerReader) *CustomerController {
	return &CustomerController{customers: customers}
}

// CustomerRow is a customers-table row with formatted totals.
type CustomerRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// GetCustomers lists customers whose name or email matches ?query=.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	summaries, err := cc.customers.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch customer table.")
		return
	}

	rows := make([]CustomerRow, len(summaries))
	for i, s := range summaries {
		rows[i] = CustomerRow{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			TotalInvoices: s.TotalInvoices,
			TotalPending:  utils.FormatCurrency(s.TotalPending),
			TotalPaid:     utils.FormatCurrency(s.TotalPaid),
		}
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}
