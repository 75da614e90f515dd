package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// DocumentRangeRepository define el puerto de persistencia para los rangos de
// números de documento.
type DocumentRangeRepository interface {
	Create(ctx context.Context, r *entity.DocumentRange) error
	GetByID(ctx context.Context, id string) (*entity.DocumentRange, error)

	// ListAll devuelve todos los rangos, activos e inactivos. La validación
	// de dominio filtra los activos; la UI de administración muestra todos.
	ListAll(ctx context.Context) ([]*entity.DocumentRange, error)

	Update(ctx context.Context, r *entity.DocumentRange) error
	Delete(ctx context.Context, id string) error
}

// DocumentNumberRepository es el puerto del índice global de números de
// documento usados (transacciones + prebendas). El índice cierra la carrera
// lectura-luego-escritura del chequeo de duplicados: el reclamo se inserta en
// la misma transacción que el registro dueño y un UNIQUE en la columna
// normalizada rechaza al segundo concurrente.
type DocumentNumberRepository interface {
	// Exists consulta por el valor YA normalizado (trim + minúsculas).
	Exists(ctx context.Context, normalized string) (bool, error)

	// Claim inserta el reclamo del número para (ownerType, ownerID).
	// Devuelve domain.ErrDuplicateDocument si el valor normalizado ya existe.
	Claim(ctx context.Context, normalized, ownerType, ownerID string) error

	// Release libera los reclamos del registro dueño (borrado o cambio de número).
	Release(ctx context.Context, ownerType, ownerID string) error
}

// Tipos de dueño en el índice de números de documento.
const (
	DocOwnerTransaction = "transaction"
	DocOwnerPrebenda    = "prebenda"
)
