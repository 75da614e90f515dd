package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memTxRepo struct {
	byID map[string]*entity.Transaction
}

func newMemTxRepo() *memTxRepo { return &memTxRepo{byID: map[string]*entity.Transaction{}} }

func (m *memTxRepo) Create(_ context.Context, t *entity.Transaction) error {
	cp := *t
	m.byID[t.ID] = &cp
	return nil
}

func (m *memTxRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTxRepo) Update(_ context.Context, t *entity.Transaction) error {
	cp := *t
	m.byID[t.ID] = &cp
	return nil
}

func (m *memTxRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memTxRepo) List(context.Context, repository.TransactionFilter) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(m.byID))
	for _, t := range m.byID {
		out = append(out, t)
	}
	return out, nil
}

type memRangeRepo struct {
	ranges []*entity.DocumentRange
}

func (m *memRangeRepo) Create(context.Context, *entity.DocumentRange) error { return nil }
func (m *memRangeRepo) GetByID(context.Context, string) (*entity.DocumentRange, error) {
	return nil, nil
}
func (m *memRangeRepo) ListAll(context.Context) ([]*entity.DocumentRange, error) {
	return m.ranges, nil
}
func (m *memRangeRepo) Update(context.Context, *entity.DocumentRange) error { return nil }
func (m *memRangeRepo) Delete(context.Context, string) error                { return nil }

type memDocRepo struct {
	owners map[string]string // normalizado -> ownerType/ownerID
}

func newMemDocRepo() *memDocRepo { return &memDocRepo{owners: map[string]string{}} }

func (m *memDocRepo) Exists(_ context.Context, normalized string) (bool, error) {
	_, ok := m.owners[normalized]
	return ok, nil
}

func (m *memDocRepo) Claim(_ context.Context, normalized, ownerType, ownerID string) error {
	if _, ok := m.owners[normalized]; ok {
		return domain.ErrDuplicateDocument
	}
	m.owners[normalized] = ownerType + "/" + ownerID
	return nil
}

func (m *memDocRepo) Release(_ context.Context, ownerType, ownerID string) error {
	key := ownerType + "/" + ownerID
	for n, owner := range m.owners {
		if owner == key {
			delete(m.owners, n)
		}
	}
	return nil
}

// memTxRunner ejecuta el callback directo contra los repos en memoria.
type memTxRunner struct {
	txRepo  repository.TransactionRepository
	docRepo repository.DocumentNumberRepository
}

func (m *memTxRunner) Run(_ context.Context, fn func(
	repository.TransactionRepository,
	repository.PrebendaRepository,
	repository.DocumentNumberRepository,
) error) error {
	return fn(m.txRepo, nil, m.docRepo)
}

func newGateFixture(ranges []*entity.DocumentRange, used ...string) (*usecase.TransactionUseCase, *memTxRepo, *memDocRepo, *memRangeRepo) {
	txRepo := newMemTxRepo()
	docRepo := newMemDocRepo()
	for _, u := range used {
		docRepo.owners[u] = "transaction/previo"
	}
	rangeRepo := &memRangeRepo{ranges: ranges}
	gate := appnumbering.NewService(rangeRepo, docRepo)
	uc := usecase.NewTransactionUseCase(txRepo, gate, &memTxRunner{txRepo: txRepo, docRepo: docRepo})
	return uc, txRepo, docRepo, rangeRepo
}

func createReq(doc string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:           entity.TransactionEntry,
		Description:    "ofrenda dominical",
		Amount:         decimal.NewFromInt(150),
		Category:       "ofrenda",
		PaymentMethod:  entity.MethodCash,
		DocumentNumber: doc,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Gate de envío
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionCreate_DocumentoValido(t *testing.T) {
	uc, _, docRepo, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "999", IsActive: true},
	})

	out, err := uc.Create(context.Background(), "user-1", createReq("075"))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "075", out.DocumentNumber)

	dup, err := docRepo.Exists(context.Background(), "075")
	require.NoError(t, err)
	assert.True(t, dup, "el número debe quedar reclamado")
}

func TestTransactionCreate_DocumentoDuplicado(t *testing.T) {
	uc, txRepo, _, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "999", IsActive: true},
	}, "050")

	_, err := uc.Create(context.Background(), "user-1", createReq(" 050 "))
	assert.ErrorIs(t, err, domain.ErrDuplicateDocument,
		"duplicado con espacios y sin importar mayúsculas debe rechazarse")
	assert.Empty(t, txRepo.byID, "nada debe persistirse en un rechazo")
}

func TestTransactionCreate_FueraDeRango(t *testing.T) {
	uc, txRepo, _, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "100", IsActive: true},
	})

	_, err := uc.Create(context.Background(), "user-1", createReq("150"))
	assert.ErrorIs(t, err, domain.ErrDocumentOutOfRange)
	assert.Empty(t, txRepo.byID)
}

func TestTransactionCreate_SinDocumento(t *testing.T) {
	uc, _, docRepo, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "100", IsActive: true},
	})

	out, err := uc.Create(context.Background(), "user-1", createReq(""))
	require.NoError(t, err, "sin número de documento no aplica el gate")
	require.NotNil(t, out)
	assert.Empty(t, docRepo.owners, "no debe reclamarse nada")
}

func TestTransactionCreate_SinRangosConfigurados(t *testing.T) {
	uc, _, _, _ := newGateFixture(nil)

	out, err := uc.Create(context.Background(), "user-1", createReq("CUALQUIERA-1"))
	require.NoError(t, err, "sin rangos configurados cualquier número es válido")
	require.NotNil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: el gate solo se re-aplica si el número cambia
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionUpdate_SinCambioDeNumero_NoRevalida(t *testing.T) {
	uc, _, _, rangeRepo := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "999", IsActive: true},
	})

	out, err := uc.Create(context.Background(), "user-1", createReq("075"))
	require.NoError(t, err)

	// El rango deja de cubrir el número ya aceptado.
	rangeRepo.ranges[0].EndNumber = "050"

	desc := "corrección de descripción"
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateTransactionRequest{Description: &desc})
	require.NoError(t, err, "editar otros campos no debe re-validar el número")
	assert.Equal(t, "075", updated.DocumentNumber)
}

func TestTransactionUpdate_CambioDeNumero_AplicaGate(t *testing.T) {
	uc, _, docRepo, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "100", IsActive: true},
	})

	out, err := uc.Create(context.Background(), "user-1", createReq("075"))
	require.NoError(t, err)

	bad := "150"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateTransactionRequest{DocumentNumber: &bad})
	assert.ErrorIs(t, err, domain.ErrDocumentOutOfRange)

	good := "080"
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateTransactionRequest{DocumentNumber: &good})
	require.NoError(t, err)
	assert.Equal(t, "080", updated.DocumentNumber)

	_, oldClaimed := docRepo.owners["075"]
	assert.False(t, oldClaimed, "el número anterior debe liberarse")
	_, newClaimed := docRepo.owners["080"]
	assert.True(t, newClaimed, "el número nuevo debe quedar reclamado")
}

func TestTransactionDelete_LiberaNumero(t *testing.T) {
	uc, txRepo, docRepo, _ := newGateFixture([]*entity.DocumentRange{
		{ID: "r1", Name: "Recibos", StartNumber: "001", EndNumber: "999", IsActive: true},
	})

	out, err := uc.Create(context.Background(), "user-1", createReq("075"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Empty(t, txRepo.byID)
	assert.Empty(t, docRepo.owners, "borrar el registro libera su número")

	// El mismo número puede reutilizarse después del borrado.
	_, err = uc.Create(context.Background(), "user-2", createReq("075"))
	assert.NoError(t, err)
}

func TestTransactionCreate_TipoInvalido(t *testing.T) {
	uc, _, _, _ := newGateFixture(nil)

	in := createReq("")
	in.Type = "transferencia"
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
