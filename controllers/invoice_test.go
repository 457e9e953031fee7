package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"invoice-dashboard/models"
	"invoice-dashboard/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceRouter(store *fakeStore, reader *fakeReader, customers *fakeCustomers) *gin.Engine {
	views := services.NewViewCache(16)
	ic := NewInvoiceController(services.NewInvoiceActions(store, views, nil), reader, customers, views)

	r := gin.New()
	invoices := r.Group("/dashboard/invoices")
	invoices.GET("", ic.GetInvoices)
	invoices.POST("", ic.CreateInvoice)
	invoices.GET("/:id", ic.GetInvoice)
	invoices.POST("/:id", ic.UpdateInvoice)
	invoices.PUT("/:id", ic.UpdateInvoice)
	invoices.DELETE("/:id", ic.DeleteInvoice)
	invoices.POST("/:id/delete", ic.DeleteInvoice)
	return r
}

func validValues() url.Values {
	return url.Values{"customerId": {leeID}, "amount": {"157.95"}, "status": {"pending"}}
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestCreateInvoice_RedirectsToList(t *testing.T) {
	store := &fakeStore{}
	r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

	w := postForm(r, http.MethodPost, "/dashboard/invoices", validValues())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, services.InvoicesPath, w.Header().Get("Location"))
	assert.Equal(t, []int64{15795}, store.inserts)
}

func TestCreateInvoice_ValidationErrors(t *testing.T) {
	store := &fakeStore{}
	r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

	form := validValues()
	form.Set("amount", "0")
	form.Del("status")
	w := postForm(r, http.MethodPost, "/dashboard/invoices", form)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w.Body.Bytes())
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", body["message"])
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"Please enter an amount greater than $0."}, errs["amount"])
	assert.Equal(t, []any{"Please select an invoice status."}, errs["status"])
	assert.NotContains(t, errs, "customerId")
	assert.Empty(t, store.inserts)
}

func TestCreateInvoice_DatabaseError(t *testing.T) {
	r := invoiceRouter(&fakeStore{err: errors.New("connection refused")}, &fakeReader{}, &fakeCustomers{})

	w := postForm(r, http.MethodPost, "/dashboard/invoices", validValues())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Create Invoice."}`, w.Body.String())
}

func TestUpdateInvoice(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			store := &fakeStore{}
			r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

			w := postForm(r, method, "/dashboard/invoices/"+sampleInvoiceID, validValues())

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, services.InvoicesPath, w.Header().Get("Location"))
			assert.Equal(t, []string{sampleInvoiceID}, store.updates)
		})
	}
}

func TestUpdateInvoice_MalformedID(t *testing.T) {
	store := &fakeStore{}
	r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

	w := postForm(r, http.MethodPost, "/dashboard/invoices/not-a-uuid", validValues())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Update Invoice."}`, w.Body.String())
	assert.Empty(t, store.updates)
}

func TestDeleteInvoice_MalformedID(t *testing.T) {
	store := &fakeStore{}
	r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

	for _, method := range []string{http.MethodDelete, http.MethodPost} {
		path := "/dashboard/invoices/not-a-uuid"
		if method == http.MethodPost {
			path += "/delete"
		}
		w := postForm(r, method, path, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code, method)
		assert.JSONEq(t, `{"message":"Database Error: Failed to Delete Invoice."}`, w.Body.String(), method)
	}
	assert.Empty(t, store.deletes)
}

func TestDeleteInvoice(t *testing.T) {
	store := &fakeStore{}
	r := invoiceRouter(store, &fakeReader{}, &fakeCustomers{})

	w := postForm(r, http.MethodDelete, "/dashboard/invoices/"+sampleInvoiceID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Deleted Invoice."}`, w.Body.String())

	w = postForm(r, http.MethodPost, "/dashboard/invoices/"+sampleInvoiceID+"/delete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{sampleInvoiceID, sampleInvoiceID}, store.deletes)
}

func TestDeleteInvoice_DatabaseError(t *testing.T) {
	r := invoiceRouter(&fakeStore{err: errors.New("down")}, &fakeReader{}, &fakeCustomers{})

	w := postForm(r, http.MethodDelete, "/dashboard/invoices/"+sampleInvoiceID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Delete Invoice."}`, w.Body.String())
}

func TestGetInvoices_FormatsAndCaches(t *testing.T) {
	reader := &fakeReader{rows: []models.InvoiceRow{sampleRow()}, pages: 2}
	r := invoiceRouter(&fakeStore{}, reader, &fakeCustomers{})

	w := get(r, "/dashboard/invoices?query=lee&page=1")
	require.Equal(t, http.StatusOK, w.Code)

	var view InvoiceListView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Invoices, 1)
	assert.Equal(t, "$1,575.95", view.Invoices[0].Amount)
	assert.Equal(t, int64(157595), view.Invoices[0].AmountCents)
	assert.Equal(t, "Oct 15, 2023", view.Invoices[0].Date)
	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, 2, view.TotalPages)
	assert.JSONEq(t, `[1,2]`, string(mustJSON(t, view.Pagination)))

	get(r, "/dashboard/invoices?query=lee&page=1")
	assert.Equal(t, 1, reader.listCalls, "second read is served from cache")
}

func TestGetInvoices_InvalidatedByMutation(t *testing.T) {
	reader := &fakeReader{rows: []models.InvoiceRow{sampleRow()}, pages: 1}
	r := invoiceRouter(&fakeStore{}, reader, &fakeCustomers{})

	get(r, "/dashboard/invoices")
	postForm(r, http.MethodPost, "/dashboard/invoices", validValues())
	get(r, "/dashboard/invoices")

	assert.Equal(t, 2, reader.listCalls)
}

func TestGetInvoices_DatabaseError(t *testing.T) {
	r := invoiceRouter(&fakeStore{}, &fakeReader{err: errors.New("down")}, &fakeCustomers{})

	w := get(r, "/dashboard/invoices")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetInvoice(t *testing.T) {
	customers := &fakeCustomers{fields: []models.CustomerField{{Name: "Lee Robinson"}}}
	r := invoiceRouter(&fakeStore{}, &fakeReader{invoice: sampleInvoice()}, customers)

	w := get(r, "/dashboard/invoices/"+sampleInvoiceID)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w.Body.Bytes())
	invoice := body["invoice"].(map[string]any)
	assert.Equal(t, sampleInvoiceID, invoice["id"])
	assert.Equal(t, "157.95", invoice["amount"])
	assert.Equal(t, "2022-12-06", invoice["date"])
	assert.Len(t, body["customers"], 1)
}

func TestGetInvoice_NotFound(t *testing.T) {
	r := invoiceRouter(&fakeStore{}, &fakeReader{invoice: sampleInvoice()}, &fakeCustomers{})

	for _, id := range []string{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "42"} {
		w := get(r, "/dashboard/invoices/"+id)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.JSONEq(t, `{"error":"Could not find the requested invoice."}`, w.Body.String())
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
