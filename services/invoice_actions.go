// services/invoice_actions.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"invoice-dashboard/repository"
	"invoice-dashboard/utils"

	"github.com/google/uuid"
)

// errInvalidID is what postgres would report for an id that fails the uuid cast.
var errInvalidID = errors.New("invalid invoice id")

// InvoiceStore is the write side of the persistence gateway.
type InvoiceStore interface {
	InsertInvoice(ctx context.Context, customerID string, amount int64, status, date string) error
	UpdateInvoice(ctx context.Context, id, customerID string, amount int64, status string) error
	DeleteInvoice(ctx context.Context, id string) error
}

// ActionStatus is the terminal state of an invoice mutation.
type ActionStatus int

const (
	ActionOK ActionStatus = iota
	ActionValidationFailed
	ActionPersistenceFailed
)

func (s ActionStatus) String() string {
	switch s {
	case ActionOK:
		return "ok"
	case ActionValidationFailed:
		return "validation_failed"
	case ActionPersistenceFailed:
		return "persistence_failed"
	}
	return "unknown"
}

// ActionResult tells the caller what happened. RedirectTo is set only when
// the caller should navigate away.
type ActionResult struct {
	Status     ActionStatus
	Errors     utils.FieldErrors
	Message    string
	RedirectTo string
}

// InvoiceActions runs invoice form submissions through validation,
// normalization, persistence and view invalidation, in that order. A
// validation failure stops before the store is touched; a store failure
// stops before the invoice list is invalidated.
type InvoiceActions struct {
	store  InvoiceStore
	views  Invalidator
	now    func() time.Time
	logger *slog.Logger
}

func NewInvoiceActions(store InvoiceStore, views Invalidator, logger *slog.Logger) *InvoiceActions {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceActions{store: store, views: views, now: time.Now, logger: logger}
}

// SetClock replaces the clock that dates new invoices.
func (a *InvoiceActions) SetClock(now func() time.Time) {
	a.now = now
}

// Create stores a new invoice dated today (UTC).
func (a *InvoiceActions) Create(ctx context.Context, form map[string]string) ActionResult {
	input, errs := utils.ValidateInvoice(form)
	if errs != nil {
		return a.invalid("create", "Missing Fields. Failed to Create Invoice.", errs)
	}

	amount := utils.ToMinorUnits(input.Amount)
	date := utils.Today(a.now())

	if err := a.store.InsertInvoice(ctx, input.CustomerID, amount, input.Status, date); err != nil {
		return a.failed("create", "Database Error: Failed to Create Invoice.", err)
	}
	return a.succeeded("create", "", InvoicesPath)
}

// Update replaces the customer, amount and status of invoice id.
func (a *InvoiceActions) Update(ctx context.Context, id string, form map[string]string) ActionResult {
	input, errs := utils.ValidateInvoice(form)
	if errs != nil {
		return a.invalid("update", "Missing Fields. Failed to Update Invoice.", errs)
	}

	if err := uuid.Validate(id); err != nil {
		return a.failed("update", "Database Error: Failed to Update Invoice.", errors.Join(errInvalidID, err))
	}
	amount := utils.ToMinorUnits(input.Amount)

	if err := a.store.UpdateInvoice(ctx, id, input.CustomerID, amount, input.Status); err != nil {
		return a.failed("update", "Database Error: Failed to Update Invoice.", err)
	}
	return a.succeeded("update", "", InvoicesPath)
}

// Delete removes invoice id. It is invoked in place, so no redirect.
func (a *InvoiceActions) Delete(ctx context.Context, id string) ActionResult {
	if err := uuid.Validate(id); err != nil {
		return a.failed("delete", "Database Error: Failed to Delete Invoice.", errors.Join(errInvalidID, err))
	}
	if err := a.store.DeleteInvoice(ctx, id); err != nil {
		return a.failed("delete", "Database Error: Failed to Delete Invoice.", err)
	}
	return a.succeeded("delete", "Deleted Invoice.", "")
}

func (a *InvoiceActions) invalid(action, message string, errs utils.FieldErrors) ActionResult {
	actionsTotal.WithLabelValues(action, ActionValidationFailed.String()).Inc()
	a.logger.Debug("invoice form rejected", "action", action, "fields", len(errs))
	return ActionResult{Status: ActionValidationFailed, Errors: errs, Message: message}
}

func (a *InvoiceActions) failed(action, message string, err error) ActionResult {
	actionsTotal.WithLabelValues(action, ActionPersistenceFailed.String()).Inc()
	attrs := []any{"action", action, "error", err}
	var dbErr *repository.DatabaseError
	if errors.As(err, &dbErr) && dbErr.SQLState() != "" {
		attrs = append(attrs, "sqlstate", dbErr.SQLState())
	}
	a.logger.Error("invoice mutation failed", attrs...)
	return ActionResult{Status: ActionPersistenceFailed, Message: message}
}

func (a *InvoiceActions) succeeded(action, message, redirect string) ActionResult {
	a.views.Invalidate(InvoicesPath)
	actionsTotal.WithLabelValues(action, ActionOK.String()).Inc()
	return ActionResult{Status: ActionOK, Message: message, RedirectTo: redirect}
}
