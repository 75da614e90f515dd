package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// RegistrationUseCase casos de uso CRUD para inscripciones a eventos.
type RegistrationUseCase struct {
	repo repository.RegistrationRepository
}

// NewRegistrationUseCase construye el caso de uso.
func NewRegistrationUseCase(repo repository.RegistrationRepository) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo}
}

// Create registra una inscripción en estado pendiente.
func (uc *RegistrationUseCase) Create(ctx context.Context, in dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	if in.PersonName == "" || in.Event == "" || in.AmountDue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Registration{
		ID:         uuid.New().String(),
		PersonName: in.PersonName,
		Event:      in.Event,
		Phone:      in.Phone,
		Email:      in.Email,
		AmountDue:  in.AmountDue,
		Status:     entity.RegistrationPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRegistrationResponse(r), nil
}

// GetByID obtiene una inscripción por ID.
func (uc *RegistrationUseCase) GetByID(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toRegistrationResponse(r), nil
}

// Update aplica una actualización parcial, incluido el cambio de estado.
func (uc *RegistrationUseCase) Update(ctx context.Context, id string, in dto.UpdateRegistrationRequest) (*dto.RegistrationResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	if in.PersonName != nil {
		r.PersonName = *in.PersonName
	}
	if in.Event != nil {
		r.Event = *in.Event
	}
	if in.Phone != nil {
		r.Phone = *in.Phone
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.AmountDue != nil {
		if in.AmountDue.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		r.AmountDue = *in.AmountDue
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.RegistrationPending, entity.RegistrationPaid, entity.RegistrationCancelled:
			r.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRegistrationResponse(r), nil
}

// Delete elimina una inscripción.
func (uc *RegistrationUseCase) Delete(ctx context.Context, id string) error {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista inscripciones paginadas.
func (uc *RegistrationUseCase) List(ctx context.Context, limit, offset int) (*dto.RegistrationListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegistrationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRegistrationResponse(r))
	}
	return &dto.RegistrationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toRegistrationResponse(r *entity.Registration) *dto.RegistrationResponse {
	if r == nil {
		return nil
	}
	return &dto.RegistrationResponse{
		ID:         r.ID,
		PersonName: r.PersonName,
		Event:      r.Event,
		Phone:      r.Phone,
		Email:      r.Email,
		AmountDue:  r.AmountDue,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
