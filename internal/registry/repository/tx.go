package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs a function inside a single database transaction. The transaction
// commits when fn returns nil and rolls back on any error.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// NewTxRunner creates a GORM-based TxRunner.
func NewTxRunner(db *gorm.DB) TxRunner {
	return &txRunner{db: db}
}

type txRunner struct {
	db *gorm.DB
}

// InTx implements TxRunner.
func (r *txRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// conn picks the transaction when one is given, the root handle otherwise.
func conn(ctx context.Context, root, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return root.WithContext(ctx)
}
