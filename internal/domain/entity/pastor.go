package entity

import "time"

// Roles ministeriales.
const (
	MinistryPastor = "pastor"
	MinistryWorker = "obrero"
)

// Pastor representa el registro de un pastor u obrero de la congregación.
// Children se persiste como blob JSON en una sola columna (lista de nombres);
// el repositorio serializa y deserializa en la frontera de acceso.
type Pastor struct {
	ID        string
	Name      string
	Ministry  string // pastor | obrero
	Phone     string
	Email     string
	Address   string
	Children  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
