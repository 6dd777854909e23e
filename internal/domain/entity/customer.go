package entity

import "time"

// Customer representa un cliente de la empresa (facturación).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string
	Email     string // opcional; vacío = sin email registrado
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
