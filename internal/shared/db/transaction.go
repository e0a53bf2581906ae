// Package db provides transaction scoping and retry helpers for gorm.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs fn inside a transaction. *TransactionManager implements it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionManager opens transactions and carries them through the context,
// so repositories called from fn share the same *gorm.DB.
type TransactionManager struct {
	db    *gorm.DB
	retry *Retrier
}

// NewTransactionManager creates a TransactionManager. A deadlock or lock
// timeout aborts the whole transaction, so retry re-runs fn from the start;
// nil disables that.
func NewTransactionManager(db *gorm.DB, retry *Retrier) *TransactionManager {
	return &TransactionManager{db: db, retry: retry}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise. A call
// made while a transaction is already open joins it.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	return tm.retry.Do(ctx, func(ctx context.Context) error {
		return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, tx))
		})
	})
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB bound
// to ctx when there is none.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
