package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"invoice-dashboard/models"
	"invoice-dashboard/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	leeID           = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
	sampleInvoiceID = "2e94d1ed-d220-449f-9f11-f0bbceed9645"
)

type fakeStore struct {
	err     error
	inserts []int64
	updates []string
	deletes []string
}

func (f *fakeStore) InsertInvoice(_ context.Context, _ string, amount int64, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.inserts = append(f.inserts, amount)
	return nil
}

func (f *fakeStore) UpdateInvoice(_ context.Context, id, _ string, _ int64, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, id)
	return nil
}

func (f *fakeStore) DeleteInvoice(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeReader struct {
	err       error
	rows      []models.InvoiceRow
	pages     int
	invoice   *models.Invoice
	latest    []models.LatestInvoice
	cards     models.CardData
	revenue   []models.Revenue
	listCalls int
}

func (f *fakeReader) FetchFilteredInvoices(context.Context, string, int) ([]models.InvoiceRow, error) {
	f.listCalls++
	return f.rows, f.err
}

func (f *fakeReader) FetchInvoicesPages(context.Context, string) (int, error) {
	return f.pages, f.err
}

func (f *fakeReader) FetchInvoiceByID(_ context.Context, id string) (*models.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.invoice == nil || f.invoice.ID.String() != id {
		return nil, repository.ErrNotFound
	}
	return f.invoice, nil
}

func (f *fakeReader) FetchLatestInvoices(context.Context) ([]models.LatestInvoice, error) {
	return f.latest, f.err
}

func (f *fakeReader) FetchCardData(context.Context) (models.CardData, error) {
	return f.cards, f.err
}

func (f *fakeReader) FetchRevenue(context.Context) ([]models.Revenue, error) {
	return f.revenue, f.err
}

type fakeCustomers struct {
	err       error
	fields    []models.CustomerField
	summaries []models.CustomerSummary
	query     string
}

func (f *fakeCustomers) FetchCustomers(context.Context) ([]models.CustomerField, error) {
	return f.fields, f.err
}

func (f *fakeCustomers) FetchFilteredCustomers(_ context.Context, query string) ([]models.CustomerSummary, error) {
	f.query = query
	return f.summaries, f.err
}

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		ID:         uuid.MustParse(sampleInvoiceID),
		CustomerID: uuid.MustParse(leeID),
		Amount:     15795,
		Status:     "pending",
		Date:       datatypes.Date(time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC)),
	}
}

func sampleRow() models.InvoiceRow {
	return models.InvoiceRow{
		ID:         uuid.MustParse(sampleInvoiceID),
		CustomerID: uuid.MustParse(leeID),
		Name:       "Lee Robinson",
		Email:      "lee@robinson.com",
		ImageURL:   "/customers/lee-robinson.png",
		Date:       time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
		Amount:     157595,
		Status:     "paid",
	}
}

func postForm(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}
