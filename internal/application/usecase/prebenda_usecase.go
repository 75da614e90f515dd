package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/numbering"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// PrebendaUseCase casos de uso CRUD para prebendas y auxilios pastorales.
// Comparte con TransactionUseCase el gate de numeración: la unicidad del
// número de documento es global entre ambos tipos de registro.
type PrebendaUseCase struct {
	repo     repository.PrebendaRepository
	gate     *appnumbering.Service
	txRunner appnumbering.TxRunner
}

// NewPrebendaUseCase construye el caso de uso.
func NewPrebendaUseCase(
	repo repository.PrebendaRepository,
	gate *appnumbering.Service,
	txRunner appnumbering.TxRunner,
) *PrebendaUseCase {
	return &PrebendaUseCase{repo: repo, gate: gate, txRunner: txRunner}
}

// Create valida y persiste una prebenda/auxilio.
func (uc *PrebendaUseCase) Create(ctx context.Context, userID string, in dto.CreatePrebendaRequest) (*dto.PrebendaResponse, error) {
	if in.PastorName == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	doc := strings.TrimSpace(in.DocumentNumber)
	if err := uc.gate.Check(ctx, doc); err != nil {
		return nil, err
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	isPrebenda := in.IsPrebenda
	if !isPrebenda && !in.IsAuxilio {
		isPrebenda = true // sin bandera explícita se asume prebenda regular
	}
	p := &entity.Prebenda{
		ID:             uuid.New().String(),
		PastorName:     in.PastorName,
		Amount:         in.Amount,
		Date:           date,
		PaymentMethod:  in.PaymentMethod,
		IsPrebenda:     isPrebenda,
		IsAuxilio:      in.IsAuxilio,
		DocumentNumber: doc,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if doc == "" {
		if err := uc.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		return toPrebendaResponse(p), nil
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		prebRepo repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Claim(ctx, numbering.Normalize(doc), repository.DocOwnerPrebenda, p.ID); err != nil {
			return err
		}
		return prebRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPrebendaResponse(p), nil
}

// GetByID obtiene una prebenda por ID.
func (uc *PrebendaUseCase) GetByID(ctx context.Context, id string) (*dto.PrebendaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPrebendaResponse(p), nil
}

// Update actualiza una prebenda; re-aplica el gate solo si cambia el número.
func (uc *PrebendaUseCase) Update(ctx context.Context, id string, in dto.UpdatePrebendaRequest) (*dto.PrebendaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.PastorName != nil {
		p.PastorName = *in.PastorName
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Amount = *in.Amount
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.PaymentMethod != nil {
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.IsPrebenda != nil {
		p.IsPrebenda = *in.IsPrebenda
	}
	if in.IsAuxilio != nil {
		p.IsAuxilio = *in.IsAuxilio
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}

	oldDoc := p.DocumentNumber
	newDoc := oldDoc
	if in.DocumentNumber != nil {
		newDoc = strings.TrimSpace(*in.DocumentNumber)
	}
	p.UpdatedAt = time.Now()

	if numbering.Normalize(newDoc) == numbering.Normalize(oldDoc) {
		p.DocumentNumber = newDoc
		if err := uc.repo.Update(ctx, p); err != nil {
			return nil, err
		}
		return toPrebendaResponse(p), nil
	}

	if err := uc.gate.Check(ctx, newDoc); err != nil {
		return nil, err
	}
	p.DocumentNumber = newDoc
	err = uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		prebRepo repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Release(ctx, repository.DocOwnerPrebenda, p.ID); err != nil {
			return err
		}
		if newDoc != "" {
			if err := docRepo.Claim(ctx, numbering.Normalize(newDoc), repository.DocOwnerPrebenda, p.ID); err != nil {
				return err
			}
		}
		return prebRepo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPrebendaResponse(p), nil
}

// Delete elimina una prebenda y libera su número de documento.
func (uc *PrebendaUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.TransactionRepository,
		prebRepo repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Release(ctx, repository.DocOwnerPrebenda, id); err != nil {
			return err
		}
		return prebRepo.Delete(ctx, id)
	})
}

// List lista prebendas con filtros y paginación.
func (uc *PrebendaUseCase) List(ctx context.Context, f repository.PrebendaFilter) (*dto.PrebendaListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PrebendaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPrebendaResponse(p))
	}
	return &dto.PrebendaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

func toPrebendaResponse(p *entity.Prebenda) *dto.PrebendaResponse {
	if p == nil {
		return nil
	}
	return &dto.PrebendaResponse{
		ID:             p.ID,
		PastorName:     p.PastorName,
		Amount:         p.Amount,
		Date:           p.Date,
		PaymentMethod:  p.PaymentMethod,
		IsPrebenda:     p.IsPrebenda,
		IsAuxilio:      p.IsAuxilio,
		DocumentNumber: p.DocumentNumber,
		Notes:          p.Notes,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
