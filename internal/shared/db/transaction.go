// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs units of work inside one database transaction and
// hands the transaction to repositories through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction. When ctx already carries
// a transaction, fn joins it instead of opening a nested one, so decorators
// can compose without knowing who started the unit of work.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTx returns the transaction from context if available, otherwise the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB bound to ctx.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
