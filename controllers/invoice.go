// controllers/invoice.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"invoice-dashboard/models"
	"invoice-dashboard/repository"
	"invoice-dashboard/services"
	"invoice-dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotFoundMessage is the body of the invoice 404 page.
const NotFoundMessage = "Could not find the requested invoice."

// InvoiceMutator is implemented by services.InvoiceActions.
type InvoiceMutator interface {
	Create(ctx context.Context, form map[string]string) services.ActionResult
	Update(ctx context.Context, id string, form map[string]string) services.ActionResult
	Delete(ctx context.Context, id string) services.ActionResult
}

// InvoiceReader is the read side of the invoice repository.
type InvoiceReader interface {
	FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoiceRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
	FetchCardData(ctx context.Context) (models.CardData, error)
	FetchRevenue(ctx context.Context) ([]models.Revenue, error)
}

// CustomerReader is the read side of the customer repository.
type CustomerReader interface {
	FetchCustomers(ctx context.Context) ([]models.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomerSummary, error)
}

// InvoiceController serves the invoice list, the edit form data and the
// create/update/delete form actions.
type InvoiceController struct {
	actions   InvoiceMutator
	invoices  InvoiceReader
	customers CustomerReader
	views     *services.ViewCache
	locale    string
}

func NewInvoiceController(actions InvoiceMutator, invoices InvoiceReader, customers CustomerReader, views *services.ViewCache) *InvoiceController {
	return &InvoiceController{actions: actions, invoices: invoices, customers: customers, views: views, locale: "en-US"}
}

// InvoiceListItem is one formatted row of the invoices table.
type InvoiceListItem struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ImageURL    string    `json:"image_url"`
	Amount      string    `json:"amount"`
	AmountCents int64     `json:"amount_cents"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
}

// InvoiceListView is the cached invoices page.
type InvoiceListView struct {
	Invoices    []InvoiceListItem `json:"invoices"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Pagination  []utils.PageLabel `json:"pagination"`
}

// GetInvoices lists one page of invoices matching ?query=, served from the view cache.
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	key := fmt.Sprintf("query=%s&page=%d", query, page)
	view, err := services.Cached(c.Request.Context(), ic.views, services.InvoicesPath, key, func(ctx context.Context) (InvoiceListView, error) {
		return ic.buildListView(ctx, query, page)
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch invoices.")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (ic *InvoiceController) buildListView(ctx context.Context, query string, page int) (InvoiceListView, error) {
	rows, err := ic.invoices.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		return InvoiceListView{}, err
	}
	totalPages, err := ic.invoices.FetchInvoicesPages(ctx, query)
	if err != nil {
		return InvoiceListView{}, err
	}

	items := make([]InvoiceListItem, len(rows))
	for i, r := range rows {
		items[i] = InvoiceListItem{
			ID:          r.ID,
			CustomerID:  r.CustomerID,
			Name:        r.Name,
			Email:       r.Email,
			ImageURL:    r.ImageURL,
			Amount:      utils.FormatCurrency(r.Amount),
			AmountCents: r.Amount,
			Date:        utils.FormatDateToLocal(r.Date.Format(utils.DateLayout), ic.locale),
			Status:      r.Status,
		}
	}
	return InvoiceListView{
		Invoices:    items,
		CurrentPage: page,
		TotalPages:  totalPages,
		Pagination:  utils.GeneratePagination(page, totalPages),
	}, nil
}

// GetInvoice returns an invoice for the edit form, with amount in dollars,
// plus the customer choices.
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := ic.invoices.FetchInvoiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, NotFoundMessage)
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch invoice.")
		}
		return
	}

	customers, err := ic.customers.FetchCustomers(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database Error: Failed to fetch customers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice": gin.H{
			"id":          invoice.ID,
			"customer_id": invoice.CustomerID,
			"amount":      utils.FromMinorUnits(invoice.Amount).StringFixed(2),
			"status":      invoice.Status,
			"date":        time.Time(invoice.Date).Format(utils.DateLayout),
		},
		"customers": customers,
	})
}

// CreateInvoice handles the create-invoice form.
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	respondAction(c, ic.actions.Create(c.Request.Context(), formValues(c)))
}

// UpdateInvoice handles the edit-invoice form.
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	respondAction(c, ic.actions.Update(c.Request.Context(), c.Param("id"), formValues(c)))
}

// DeleteInvoice removes an invoice in place.
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	respondAction(c, ic.actions.Delete(c.Request.Context(), c.Param("id")))
}

// invoiceID answers the edit form's 404 for ids that cannot name a stored invoice.
func invoiceID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, NotFoundMessage)
		return "", false
	}
	return id.String(), true
}

// formValues collects the schema fields present in the submitted form.
func formValues(c *gin.Context) map[string]string {
	form := make(map[string]string, len(utils.InvoiceSchema))
	for _, rule := range utils.InvoiceSchema {
		if v, ok := c.GetPostForm(rule.Field); ok {
			form[rule.Field] = v
		}
	}
	return form
}

func respondAction(c *gin.Context, res services.ActionResult) {
	switch res.Status {
	case services.ActionValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": res.Errors, "message": res.Message})
	case services.ActionPersistenceFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Message})
	default:
		if res.RedirectTo != "" {
			c.Redirect(http.StatusSeeOther, res.RedirectTo)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.Message})
	}
}
