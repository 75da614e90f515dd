package entity

import "time"

// DocumentRange representa un rango de números de documento autorizados.
// StartNumber y EndNumber se guardan como texto opaco: pueden ser numéricos
// ("001".."999") o no ("NF-001".."NF-999"); la regla de comparación se decide
// en el dominio de numeración, no aquí.
//
// No existe relación de llave foránea con los registros que llevan número de
// documento: la pertenencia se calcula bajo demanda. Un rango puede cambiar o
// desactivarse después de aceptar documentos sin invalidarlos retroactivamente.
type DocumentRange struct {
	ID          string
	Name        string
	StartNumber string
	EndNumber   string
	Description string
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
