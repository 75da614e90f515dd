package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// RegistrationRepository define el puerto de persistencia para Registration.
type RegistrationRepository interface {
	Create(ctx context.Context, r *entity.Registration) error
	GetByID(ctx context.Context, id string) (*entity.Registration, error)
	Update(ctx context.Context, r *entity.Registration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Registration, error)
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Update(ctx context.Context, p *entity.Payment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	ListByRegistration(ctx context.Context, registrationID string) ([]*entity.Payment, error)
}
