package dto

import "time"

// CreatePastorRequest entrada para registrar un pastor u obrero.
type CreatePastorRequest struct {
	Name     string   `json:"name" validate:"required"`
	Ministry string   `json:"ministry" validate:"omitempty,oneof=pastor obrero"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Address  string   `json:"address"`
	Children []string `json:"children"`
}

// UpdatePastorRequest actualización parcial.
type UpdatePastorRequest struct {
	Name     *string  `json:"name"`
	Ministry *string  `json:"ministry" validate:"omitempty,oneof=pastor obrero"`
	Phone    *string  `json:"phone"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
	Children []string `json:"children"`
}

// PastorResponse salida de un pastor/obrero.
type PastorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Ministry  string    `json:"ministry"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Children  []string  `json:"children"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PastorListResponse lista paginada.
type PastorListResponse struct {
	Items []PastorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
