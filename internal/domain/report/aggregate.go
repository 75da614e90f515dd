// Package report contiene las funciones puras de agregación de tesorería:
// balance, totales por discriminador y progreso de metas. Todas recalculan
// desde la colección completa (sin acumuladores incrementales) y son
// idempotentes e independientes del orden de los elementos.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// Balance suma con signo: las entradas suman y las salidas restan.
func Balance(movs []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		switch m.Type {
		case entity.TransactionEntry:
			total = total.Add(m.Amount)
		case entity.TransactionExit:
			total = total.Sub(m.Amount)
		}
	}
	return total
}

// TotalByType suma los montos de los movimientos del tipo dado.
func TotalByType(movs []*entity.Transaction, typ string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		if m.Type == typ {
			total = total.Add(m.Amount)
		}
	}
	return total
}

// KeyTotal es un par clave/total de TotalByKey.
type KeyTotal struct {
	Key   string
	Total decimal.Decimal
}

// TotalByKey agrupa montos por una clave arbitraria (método de pago,
// categoría, nombre de pastor, mes). El orden de las claves en la salida es
// el de primera aparición durante el barrido; no tiene otro significado.
func TotalByKey(movs []*entity.Transaction, keyFn func(*entity.Transaction) string) []KeyTotal {
	idx := make(map[string]int, len(movs))
	var out []KeyTotal
	for _, m := range movs {
		k := keyFn(m)
		i, ok := idx[k]
		if !ok {
			idx[k] = len(out)
			out = append(out, KeyTotal{Key: k, Total: m.Amount})
			continue
		}
		out[i].Total = out[i].Total.Add(m.Amount)
	}
	return out
}

// PrebendaTotal suma los montos de una lista de prebendas/auxilios.
func PrebendaTotal(items []*entity.Prebenda) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Amount)
	}
	return total
}
