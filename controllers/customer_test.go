package controllers

import (
	"errors"
	"net/http"
	"testing"

	"invoice-dashboard/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomers(t *testing.T) {
	customers := &fakeCustomers{summaries: []models.CustomerSummary{{
		Name:          "Delba de Oliveira",
		Email:         "delba@oliveira.com",
		TotalInvoices: 2,
		TotalPending:  20348,
		TotalPaid:     500,
	}}}
	cc := NewCustomerController(customers)
	r := gin.New()
	r.GET("/customers", cc.GetCustomers)

	w := get(r, "/customers?query=delba")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delba", customers.query)
	rows := decode(t, w.Body.Bytes())["customers"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "$203.48", row["total_pending"])
	assert.Equal(t, "$5.00", row["total_paid"])
	assert.Equal(t, float64(2), row["total_invoices"])
}

func TestGetCustomers_DatabaseError(t *testing.T) {
	cc := NewCustomerController(&fakeCustomers{err: errors.New("down")})
	r := gin.New()
	r.GET("/customers", cc.GetCustomers)

	assert.Equal(t, http.StatusInternalServerError, get(r, "/customers").Code)
}
