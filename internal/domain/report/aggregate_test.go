package report_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/report"
)

func mov(typ, category, method string, amount string) *entity.Transaction {
	return &entity.Transaction{
		Type:          typ,
		Category:      category,
		PaymentMethod: method,
		Amount:        decimal.RequireFromString(amount),
	}
}

func fixtureMovs() []*entity.Transaction {
	return []*entity.Transaction{
		mov(entity.TransactionEntry, "diezmo", "efectivo", "100.50"),
		mov(entity.TransactionEntry, "ofrenda", "pix", "49.50"),
		mov(entity.TransactionExit, "mantenimiento", "transferencia", "30.00"),
		mov(entity.TransactionEntry, "diezmo", "pix", "200.00"),
		mov(entity.TransactionExit, "misiones", "efectivo", "20.00"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance / TotalByType
// ──────────────────────────────────────────────────────────────────────────────

func TestBalance_EntradasSumanSalidasRestan(t *testing.T) {
	// 100.50 + 49.50 + 200.00 - 30.00 - 20.00 = 300.00
	b := report.Balance(fixtureMovs())
	assert.True(t, b.Equal(decimal.RequireFromString("300.00")), "balance = %s", b)
}

func TestTotalByType(t *testing.T) {
	movs := fixtureMovs()
	entradas := report.TotalByType(movs, entity.TransactionEntry)
	salidas := report.TotalByType(movs, entity.TransactionExit)

	assert.True(t, entradas.Equal(decimal.RequireFromString("350.00")))
	assert.True(t, salidas.Equal(decimal.RequireFromString("50.00")))
}

// Idempotencia e independencia del orden: dos pasadas sobre la misma colección
// dan lo mismo, y barajar los elementos no cambia ninguna suma.
func TestAgregacion_IdempotenteEIndependienteDelOrden(t *testing.T) {
	movs := fixtureMovs()

	primera := report.Balance(movs)
	segunda := report.Balance(movs)
	assert.True(t, primera.Equal(segunda), "dos pasadas deben dar el mismo balance")

	shuffled := append([]*entity.Transaction(nil), movs...)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	assert.True(t, report.Balance(shuffled).Equal(primera),
		"barajar los movimientos no debe cambiar el balance")
	assert.True(t, report.TotalByType(shuffled, entity.TransactionEntry).
		Equal(report.TotalByType(movs, entity.TransactionEntry)))
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalByKey
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalByKey_AgrupaPorCategoria(t *testing.T) {
	totals := report.TotalByKey(fixtureMovs(), func(m *entity.Transaction) string { return m.Category })

	require.Len(t, totals, 4)
	// El orden de claves sigue la primera aparición en el barrido.
	assert.Equal(t, "diezmo", totals[0].Key)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, "ofrenda", totals[1].Key)
	assert.Equal(t, "mantenimiento", totals[2].Key)
	assert.Equal(t, "misiones", totals[3].Key)
}

func TestTotalByKey_PorMetodoDePago(t *testing.T) {
	totals := report.TotalByKey(fixtureMovs(), func(m *entity.Transaction) string { return m.PaymentMethod })

	byKey := map[string]decimal.Decimal{}
	for _, kt := range totals {
		byKey[kt.Key] = kt.Total
	}
	assert.True(t, byKey["efectivo"].Equal(decimal.RequireFromString("120.50")))
	assert.True(t, byKey["pix"].Equal(decimal.RequireFromString("249.50")))
	assert.True(t, byKey["transferencia"].Equal(decimal.RequireFromString("30.00")))
}

func TestTotalByKey_Vacio(t *testing.T) {
	totals := report.TotalByKey(nil, func(m *entity.Transaction) string { return m.Category })
	assert.Empty(t, totals)
}

// ──────────────────────────────────────────────────────────────────────────────
// PrebendaTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestPrebendaTotal(t *testing.T) {
	items := []*entity.Prebenda{
		{Amount: decimal.RequireFromString("1500.00")},
		{Amount: decimal.RequireFromString("350.75")},
	}
	assert.True(t, report.PrebendaTotal(items).Equal(decimal.RequireFromString("1850.75")))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeGoalProgress
// ──────────────────────────────────────────────────────────────────────────────

func TestGoalProgress_Clasificacion(t *testing.T) {
	casos := []struct {
		nombre string
		goal   string
		actual string
		status string
	}{
		{"excedida exacta en 100", "1000", "1000", report.GoalExceeded},
		{"excedida por encima", "1000", "1500", report.GoalExceeded},
		{"en camino exacta en 80", "1000", "800", report.GoalOnTrack},
		{"en camino 99.9", "1000", "999", report.GoalOnTrack},
		{"debajo 79.999", "100000", "79999", report.GoalBelow},
		{"debajo lejos", "1000", "100", report.GoalBelow},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := report.ComputeGoalProgress(
				decimal.RequireFromString(c.goal),
				decimal.RequireFromString(c.actual),
			)
			assert.Equal(t, c.status, p.Status)
		})
	}
}

// Meta en cero: nunca se divide; porcentaje cero y estado "below".
func TestGoalProgress_MetaCero(t *testing.T) {
	p := report.ComputeGoalProgress(decimal.Zero, decimal.RequireFromString("500"))
	assert.True(t, p.Percentage.IsZero())
	assert.Equal(t, report.GoalBelow, p.Status)
}

func TestGoalProgress_Porcentaje(t *testing.T) {
	p := report.ComputeGoalProgress(
		decimal.RequireFromString("2000"),
		decimal.RequireFromString("500"),
	)
	assert.True(t, p.Percentage.Equal(decimal.RequireFromString("25")), "porcentaje = %s", p.Percentage)
}
