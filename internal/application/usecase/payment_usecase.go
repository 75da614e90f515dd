package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// PaymentUseCase casos de uso CRUD para pagos. Cuando los pagos de una
// inscripción cubren su monto, la inscripción pasa a pagado.
type PaymentUseCase struct {
	repo    repository.PaymentRepository
	regRepo repository.RegistrationRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, regRepo repository.RegistrationRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, regRepo: regRepo}
}

// Create registra un pago. Si referencia una inscripción, valida que exista y
// actualiza su estado cuando el acumulado cubre el monto debido.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.PayerName == "" || in.PaymentMethod == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.RegistrationID != "" {
		reg, err := uc.regRepo.GetByID(ctx, in.RegistrationID)
		if err != nil {
			return nil, err
		}
		if reg == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	p := &entity.Payment{
		ID:             uuid.New().String(),
		RegistrationID: in.RegistrationID,
		PayerName:      in.PayerName,
		Amount:         in.Amount,
		PaymentMethod:  in.PaymentMethod,
		Date:           date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if p.RegistrationID != "" {
		if err := uc.settleRegistration(ctx, p.RegistrationID); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(p), nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPaymentResponse(p), nil
}

// Update aplica una actualización parcial y recalcula el estado de la
// inscripción asociada si el monto cambió.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	amountChanged := false
	if in.PayerName != nil {
		p.PayerName = *in.PayerName
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		amountChanged = !p.Amount.Equal(*in.Amount)
		p.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if amountChanged && p.RegistrationID != "" {
		if err := uc.settleRegistration(ctx, p.RegistrationID); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(p), nil
}

// Delete elimina un pago y recalcula el estado de la inscripción asociada.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if p.RegistrationID != "" {
		return uc.settleRegistration(ctx, p.RegistrationID)
	}
	return nil
}

// List lista pagos paginados.
func (uc *PaymentUseCase) List(ctx context.Context, limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByRegistration lista los pagos de una inscripción.
func (uc *PaymentUseCase) ListByRegistration(ctx context.Context, registrationID string) (*dto.PaymentListResponse, error) {
	list, err := uc.repo.ListByRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items}, nil
}

// settleRegistration recalcula el estado pendiente/pagado según los pagos
// acumulados. Las inscripciones canceladas no se tocan.
func (uc *PaymentUseCase) settleRegistration(ctx context.Context, registrationID string) error {
	reg, err := uc.regRepo.GetByID(ctx, registrationID)
	if err != nil || reg == nil {
		return err
	}
	if reg.Status == entity.RegistrationCancelled {
		return nil
	}
	payments, err := uc.repo.ListByRegistration(ctx, registrationID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	status := entity.RegistrationPending
	if total.GreaterThanOrEqual(reg.AmountDue) && reg.AmountDue.IsPositive() {
		status = entity.RegistrationPaid
	}
	if status == reg.Status {
		return nil
	}
	reg.Status = status
	reg.UpdatedAt = time.Now()
	return uc.regRepo.Update(ctx, reg)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:             p.ID,
		RegistrationID: p.RegistrationID,
		PayerName:      p.PayerName,
		Amount:         p.Amount,
		PaymentMethod:  p.PaymentMethod,
		Date:           p.Date,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
