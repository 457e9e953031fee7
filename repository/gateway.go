// Package repository is the persistence gateway: fixed, parameterized SQL
// statements issued through an explicitly passed gorm handle.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Executor runs a single parameterized statement. Placeholders are written
// as ? and rendered by the dialector.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) error
}

// Transactor runs fn inside one database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	Executor
	InTransaction(ctx context.Context, fn func(tx Executor) error) error
}

// Gateway is the gorm-backed Transactor.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Exec(ctx context.Context, query string, args ...any) error {
	return g.db.WithContext(ctx).Exec(query, args...).Error
}

// InTransaction hands fn an Executor bound to a fresh transaction. The
// executor may be used from several goroutines; database/sql serializes
// statements on the transaction's connection.
func (g *Gateway) InTransaction(ctx context.Context, fn func(tx Executor) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx})
	})
}
