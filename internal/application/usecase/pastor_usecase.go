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

// PastorUseCase casos de uso CRUD para pastores y obreros.
type PastorUseCase struct {
	repo repository.PastorRepository
}

// NewPastorUseCase construye el caso de uso.
func NewPastorUseCase(repo repository.PastorRepository) *PastorUseCase {
	return &PastorUseCase{repo: repo}
}

// Create registra un pastor u obrero.
func (uc *PastorUseCase) Create(ctx context.Context, in dto.CreatePastorRequest) (*dto.PastorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	ministry := in.Ministry
	if ministry == "" {
		ministry = entity.MinistryPastor
	}
	if ministry != entity.MinistryPastor && ministry != entity.MinistryWorker {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Pastor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Ministry:  ministry,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Children:  in.Children,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPastorResponse(p), nil
}

// GetByID obtiene un pastor por ID.
func (uc *PastorUseCase) GetByID(ctx context.Context, id string) (*dto.PastorResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPastorResponse(p), nil
}

// Update aplica una actualización parcial. Children se reemplaza completo
// cuando viene en la petición; no hay merge elemento a elemento.
func (uc *PastorUseCase) Update(ctx context.Context, id string, in dto.UpdatePastorRequest) (*dto.PastorResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Ministry != nil {
		if *in.Ministry != entity.MinistryPastor && *in.Ministry != entity.MinistryWorker {
			return nil, domain.ErrInvalidInput
		}
		p.Ministry = *in.Ministry
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Children != nil {
		p.Children = in.Children
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPastorResponse(p), nil
}

// Delete elimina un pastor.
func (uc *PastorUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista pastores paginados.
func (uc *PastorUseCase) List(ctx context.Context, limit, offset int) (*dto.PastorListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PastorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPastorResponse(p))
	}
	return &dto.PastorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPastorResponse(p *entity.Pastor) *dto.PastorResponse {
	if p == nil {
		return nil
	}
	children := p.Children
	if children == nil {
		children = []string{}
	}
	return &dto.PastorResponse{
		ID:        p.ID,
		Name:      p.Name,
		Ministry:  p.Ministry,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Children:  children,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
