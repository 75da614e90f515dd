package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.PastorRepository = (*PastorRepo)(nil)

// PastorRepo implementa PastorRepository sobre PostgreSQL.
// La lista de hijos se guarda como blob JSON en una sola columna de texto;
// la (de)serialización ocurre solo aquí, en la frontera de acceso.
type PastorRepo struct {
	db querier
}

// NewPastorRepository construye el repositorio.
func NewPastorRepository(db querier) *PastorRepo {
	return &PastorRepo{db: db}
}

const pastorColumns = `id, name, ministry, phone, email, address, children, created_at, updated_at`

func (r *PastorRepo) Create(ctx context.Context, p *entity.Pastor) error {
	children, err := marshalChildren(p.Children)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO pastors
			(id, name, ministry, phone, email, address, children, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.Exec(ctx, q,
		p.ID, p.Name, p.Ministry, p.Phone, p.Email, p.Address, children,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pastor: %w", err)
	}
	return nil
}

func (r *PastorRepo) GetByID(ctx context.Context, id string) (*entity.Pastor, error) {
	q := `SELECT ` + pastorColumns + ` FROM pastors WHERE id = $1`
	p, err := scanPastor(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pastor by id: %w", err)
	}
	return p, nil
}

func (r *PastorRepo) Update(ctx context.Context, p *entity.Pastor) error {
	children, err := marshalChildren(p.Children)
	if err != nil {
		return err
	}
	const q = `
		UPDATE pastors
		SET name = $2, ministry = $3, phone = $4, email = $5, address = $6, children = $7, updated_at = now()
		WHERE id = $1`
	_, err = r.db.Exec(ctx, q,
		p.ID, p.Name, p.Ministry, p.Phone, p.Email, p.Address, children,
	)
	if err != nil {
		return fmt.Errorf("update pastor: %w", err)
	}
	return nil
}

func (r *PastorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pastors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pastor: %w", err)
	}
	return nil
}

func (r *PastorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Pastor, error) {
	q := `SELECT ` + pastorColumns + ` FROM pastors ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pastors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pastor
	for rows.Next() {
		p, err := scanPastor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pastor: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func marshalChildren(children []string) (string, error) {
	if children == nil {
		children = []string{}
	}
	b, err := json.Marshal(children)
	if err != nil {
		return "", fmt.Errorf("marshal children: %w", err)
	}
	return string(b), nil
}

func scanPastor(row pgxScanner) (*entity.Pastor, error) {
	var (
		p        entity.Pastor
		children string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Ministry, &p.Phone, &p.Email, &p.Address, &children,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if children != "" {
		if err := json.Unmarshal([]byte(children), &p.Children); err != nil {
			return nil, fmt.Errorf("unmarshal children: %w", err)
		}
	}
	return &p, nil
}
