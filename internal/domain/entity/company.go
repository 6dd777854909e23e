package entity

import "time"

// Company representa la empresa dueña de los datos (multi-tenant por company_id).
// TemplateID es la plantilla de documento elegida para facturas y reportes;
// CurrencyCode es el código ISO-4217 con el que se formatean los montos.
type Company struct {
	ID           string
	Name         string
	TaxID        string
	Email        string
	Phone        string
	Address      string
	CurrencyCode string // ej. "USD", "COP"
	TemplateID   string // id de la plantilla del catálogo (ej. "neoBrutalist")
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
