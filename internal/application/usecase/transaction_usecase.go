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

// TransactionUseCase casos de uso CRUD para movimientos de tesorería.
// Los escritos que llevan número de documento pasan por el gate de numeración
// y se persisten junto con su reclamo en una sola transacción.
type TransactionUseCase struct {
	repo     repository.TransactionRepository
	gate     *appnumbering.Service
	txRunner appnumbering.TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	repo repository.TransactionRepository,
	gate *appnumbering.Service,
	txRunner appnumbering.TxRunner,
) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, gate: gate, txRunner: txRunner}
}

// Create valida y persiste un movimiento.
func (uc *TransactionUseCase) Create(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionEntry && in.Type != entity.TransactionExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
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
	t := &entity.Transaction{
		ID:             uuid.New().String(),
		Type:           in.Type,
		Description:    in.Description,
		Amount:         in.Amount,
		Category:       in.Category,
		PaymentMethod:  in.PaymentMethod,
		Date:           date,
		DocumentNumber: doc,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if doc == "" {
		if err := uc.repo.Create(ctx, t); err != nil {
			return nil, err
		}
		return toTransactionResponse(t), nil
	}

	// Registro + reclamo del número en la misma tx: si otro envío concurrente
	// reclamó el mismo número, el UNIQUE dispara ErrDuplicateDocument y nada
	// queda persistido.
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		_ repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Claim(ctx, numbering.Normalize(doc), repository.DocOwnerTransaction, t.ID); err != nil {
			return err
		}
		return txRepo.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// GetByID obtiene un movimiento por ID.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTransactionResponse(t), nil
}

// Update actualiza un movimiento. El gate solo se re-aplica si el número de
// documento cambia; los demás registros aceptados no se re-validan nunca.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Type != nil {
		if *in.Type != entity.TransactionEntry && *in.Type != entity.TransactionExit {
			return nil, domain.ErrInvalidInput
		}
		t.Type = *in.Type
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		t.Amount = *in.Amount
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.PaymentMethod != nil {
		t.PaymentMethod = *in.PaymentMethod
	}
	if in.Date != nil {
		t.Date = *in.Date
	}

	oldDoc := t.DocumentNumber
	newDoc := oldDoc
	if in.DocumentNumber != nil {
		newDoc = strings.TrimSpace(*in.DocumentNumber)
	}
	t.UpdatedAt = time.Now()

	if numbering.Normalize(newDoc) == numbering.Normalize(oldDoc) {
		t.DocumentNumber = newDoc
		if err := uc.repo.Update(ctx, t); err != nil {
			return nil, err
		}
		return toTransactionResponse(t), nil
	}

	if err := uc.gate.Check(ctx, newDoc); err != nil {
		return nil, err
	}
	t.DocumentNumber = newDoc
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		_ repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Release(ctx, repository.DocOwnerTransaction, t.ID); err != nil {
			return err
		}
		if newDoc != "" {
			if err := docRepo.Claim(ctx, numbering.Normalize(newDoc), repository.DocOwnerTransaction, t.ID); err != nil {
				return err
			}
		}
		return txRepo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// Delete elimina un movimiento y libera su número de documento.
// No se re-valida ningún otro registro.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		_ repository.PrebendaRepository,
		docRepo repository.DocumentNumberRepository,
	) error {
		if err := docRepo.Release(ctx, repository.DocOwnerTransaction, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
}

// List lista movimientos con filtros y paginación.
func (uc *TransactionUseCase) List(ctx context.Context, f repository.TransactionFilter) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:             t.ID,
		Type:           t.Type,
		Description:    t.Description,
		Amount:         t.Amount,
		Category:       t.Category,
		PaymentMethod:  t.PaymentMethod,
		Date:           t.Date,
		DocumentNumber: t.DocumentNumber,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
