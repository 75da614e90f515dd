package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.DocumentRangeRepository = (*DocumentRangeRepo)(nil)

// DocumentRangeRepo implementa DocumentRangeRepository sobre PostgreSQL.
type DocumentRangeRepo struct {
	db querier
}

// NewDocumentRangeRepository construye el repositorio.
func NewDocumentRangeRepository(db querier) *DocumentRangeRepo {
	return &DocumentRangeRepo{db: db}
}

const rangeColumns = `id, name, start_number, end_number, description, is_active, created_by, created_at, updated_at`

func (r *DocumentRangeRepo) Create(ctx context.Context, dr *entity.DocumentRange) error {
	const q = `
		INSERT INTO document_ranges
			(id, name, start_number, end_number, description, is_active, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.db.Exec(ctx, q,
		dr.ID, dr.Name, dr.StartNumber, dr.EndNumber, dr.Description, dr.IsActive, dr.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document_range: %w", err)
	}
	return nil
}

func (r *DocumentRangeRepo) GetByID(ctx context.Context, id string) (*entity.DocumentRange, error) {
	q := `SELECT ` + rangeColumns + ` FROM document_ranges WHERE id = $1`
	dr, err := scanRange(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document_range by id: %w", err)
	}
	return dr, nil
}

func (r *DocumentRangeRepo) ListAll(ctx context.Context) ([]*entity.DocumentRange, error) {
	q := `SELECT ` + rangeColumns + ` FROM document_ranges ORDER BY created_at`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list document_ranges: %w", err)
	}
	defer rows.Close()

	var list []*entity.DocumentRange
	for rows.Next() {
		dr, err := scanRange(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document_range: %w", err)
		}
		list = append(list, dr)
	}
	return list, rows.Err()
}

func (r *DocumentRangeRepo) Update(ctx context.Context, dr *entity.DocumentRange) error {
	const q = `
		UPDATE document_ranges
		SET name = $2, start_number = $3, end_number = $4, description = $5, is_active = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		dr.ID, dr.Name, dr.StartNumber, dr.EndNumber, dr.Description, dr.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update document_range: %w", err)
	}
	return nil
}

func (r *DocumentRangeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM document_ranges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document_range: %w", err)
	}
	return nil
}

func scanRange(row pgxScanner) (*entity.DocumentRange, error) {
	var dr entity.DocumentRange
	err := row.Scan(
		&dr.ID, &dr.Name, &dr.StartNumber, &dr.EndNumber, &dr.Description,
		&dr.IsActive, &dr.CreatedBy, &dr.CreatedAt, &dr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dr, nil
}
