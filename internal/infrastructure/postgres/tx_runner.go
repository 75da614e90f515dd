package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// Ensure TxRunner implements numbering.TxRunner.
var _ appnumbering.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Se usa para persistir un registro con número de documento junto con su
// reclamo en document_numbers de forma atómica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	prebRepo repository.PrebendaRepository,
	docRepo repository.DocumentNumberRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	txRepo := NewTransactionRepository(tx)
	prebRepo := NewPrebendaRepository(tx)
	docRepo := NewDocumentNumberRepository(tx)

	if err := fn(txRepo, prebRepo, docRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
