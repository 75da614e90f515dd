package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// DocumentRangeUseCase administración de rangos de números de documento.
// Cambiar o desactivar un rango nunca re-valida documentos ya aceptados:
// la pertenencia se evalúa solo al momento del envío.
type DocumentRangeUseCase struct {
	repo repository.DocumentRangeRepository
}

// NewDocumentRangeUseCase construye el caso de uso.
func NewDocumentRangeUseCase(repo repository.DocumentRangeRepository) *DocumentRangeUseCase {
	return &DocumentRangeUseCase{repo: repo}
}

// Create crea un rango validando inicio < fin bajo la regla del rango.
func (uc *DocumentRangeUseCase) Create(ctx context.Context, userID string, in dto.CreateDocumentRangeRequest) (*dto.DocumentRangeResponse, error) {
	name := strings.TrimSpace(in.Name)
	start := strings.TrimSpace(in.StartNumber)
	end := strings.TrimSpace(in.EndNumber)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := numbering.ValidateRangeBounds(start, end); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	r := &entity.DocumentRange{
		ID:          uuid.New().String(),
		Name:        name,
		StartNumber: start,
		EndNumber:   end,
		Description: in.Description,
		IsActive:    active,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toDocumentRangeResponse(r), nil
}

// GetByID obtiene un rango por ID.
func (uc *DocumentRangeUseCase) GetByID(ctx context.Context, id string) (*dto.DocumentRangeResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toDocumentRangeResponse(r), nil
}

// Update actualiza un rango; los límites resultantes se re-validan siempre.
func (uc *DocumentRangeUseCase) Update(ctx context.Context, id string, in dto.UpdateDocumentRangeRequest) (*dto.DocumentRangeResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.StartNumber != nil {
		r.StartNumber = strings.TrimSpace(*in.StartNumber)
	}
	if in.EndNumber != nil {
		r.EndNumber = strings.TrimSpace(*in.EndNumber)
	}
	if in.StartNumber != nil || in.EndNumber != nil {
		if err := numbering.ValidateRangeBounds(r.StartNumber, r.EndNumber); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toDocumentRangeResponse(r), nil
}

// Delete elimina un rango. Los documentos que validó siguen intactos.
func (uc *DocumentRangeUseCase) Delete(ctx context.Context, id string) error {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve todos los rangos, activos e inactivos.
func (uc *DocumentRangeUseCase) List(ctx context.Context) (*dto.DocumentRangeListResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentRangeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toDocumentRangeResponse(r))
	}
	return &dto.DocumentRangeListResponse{Items: items}, nil
}

func toDocumentRangeResponse(r *entity.DocumentRange) *dto.DocumentRangeResponse {
	if r == nil {
		return nil
	}
	return &dto.DocumentRangeResponse{
		ID:          r.ID,
		Name:        r.Name,
		StartNumber: r.StartNumber,
		EndNumber:   r.EndNumber,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
