package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	TaxID        string `json:"tax_id" validate:"required,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	CurrencyCode string `json:"currency_code" validate:"omitempty,len=3"`
	TemplateID   string `json:"template_id" validate:"omitempty,max=50"`
}

// UpdateCompanySettingsRequest ajustes de presentación y moneda de la empresa
// del token. Campos vacíos no se tocan.
type UpdateCompanySettingsRequest struct {
	CurrencyCode string `json:"currency_code" validate:"omitempty,len=3"`
	TemplateID   string `json:"template_id" validate:"omitempty,max=50"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CurrencyCode string    `json:"currency_code"`
	TemplateID   string    `json:"template_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
