package entity

import "time"

// Supplier representa un proveedor. Eliminarlo elimina sus productos en cascada.
type Supplier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CNPJ         string    `json:"cnpj,omitempty"`
	CPF          string    `json:"cpf,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	PaymentTerms string    `json:"paymentTerms,omitempty"`
	LeadTimeDays *int      `json:"leadTimeDays,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
