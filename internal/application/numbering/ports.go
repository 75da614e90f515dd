package numbering

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la DB, con repositorios
// atados a la tx. Persistir el registro y reclamar su número de documento en
// la misma transacción es lo que hace atómico el gate de envío.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		prebRepo repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error) error
}
