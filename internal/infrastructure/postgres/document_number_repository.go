package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.DocumentNumberRepository = (*DocumentNumberRepo)(nil)

// DocumentNumberRepo es el índice global de números de documento usados.
// La tabla guarda el valor normalizado (trim + minúsculas) con un UNIQUE: el
// constraint es la defensa transaccional contra dos envíos concurrentes del
// mismo número, que el chequeo previo al submit no puede cubrir.
type DocumentNumberRepo struct {
	db querier
}

// NewDocumentNumberRepository construye el repositorio; acepta el pool o una tx.
func NewDocumentNumberRepository(db querier) *DocumentNumberRepo {
	return &DocumentNumberRepo{db: db}
}

func (r *DocumentNumberRepo) Exists(ctx context.Context, normalized string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM document_numbers WHERE normalized = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, normalized).Scan(&exists); err != nil {
		return false, fmt.Errorf("document_number exists: %w", err)
	}
	return exists, nil
}

func (r *DocumentNumberRepo) Claim(ctx context.Context, normalized, ownerType, ownerID string) error {
	const q = `
		INSERT INTO document_numbers (normalized, owner_type, owner_id, created_at)
		VALUES ($1, $2, $3, now())`
	_, err := r.db.Exec(ctx, q, normalized, ownerType, ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDocument
		}
		return fmt.Errorf("claim document_number: %w", err)
	}
	return nil
}

func (r *DocumentNumberRepo) Release(ctx context.Context, ownerType, ownerID string) error {
	const q = `DELETE FROM document_numbers WHERE owner_type = $1 AND owner_id = $2`
	_, err := r.db.Exec(ctx, q, ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("release document_number: %w", err)
	}
	return nil
}
