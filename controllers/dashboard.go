package controllers

import (
	"net/http"

	"invoice-dashboard/utils"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the overview cards, the revenue chart and the
// latest invoices.
type DashboardController struct {
	invoices InvoiceReader
}

func NewDashboardController(invoices InvoiceReader) *DashboardController {
	return &DashboardController{invoices: invoices}
}

// DashboardOverview is the summary cards with currency already formatted.
type DashboardOverview struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

func (dc *DashboardController) GetOverview(c *gin.Context) {
	data, err := dc.invoices.FetchCardData(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch card data.")
		return
	}

	c.JSON(http.StatusOK, DashboardOverview{
		NumberOfInvoices:     data.NumberOfInvoices,
		NumberOfCustomers:    data.NumberOfCustomers,
		TotalPaidInvoices:    utils.FormatCurrency(data.TotalPaidInvoices),
		TotalPendingInvoices: utils.FormatCurrency(data.TotalPendingInvoices),
	})
}

// GetRevenue returns the monthly revenue with the chart's y-axis labels.
func (dc *DashboardController) GetRevenue(c *gin.Context) {
	revenue, err := dc.invoices.FetchRevenue(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch revenue data.")
		return
	}

	labels, top := utils.GenerateYAxis(revenue)
	c.JSON(http.StatusOK, gin.H{
		"revenue":     revenue,
		"yAxisLabels": labels,
		"topLabel":    top,
	})
}

func (dc *DashboardController) GetLatestInvoices(c *gin.Context) {
	latest, err := dc.invoices.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch the latest invoices.")
		return
	}

	items := make([]gin.H, len(latest))
	for i, inv := range latest {
		items[i] = gin.H{
			"id":        inv.ID,
			"name":      inv.Name,
			"email":     inv.Email,
			"image_url": inv.ImageURL,
			"amount":    utils.FormatCurrency(inv.Amount),
		}
	}
	c.JSON(http.StatusOK, gin.H{"invoices": items})
}
