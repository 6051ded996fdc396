package dto

import (
	"github.com/asaskevich/govalidator"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	CNPJ         string `json:"cnpj"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PaymentTerms string `json:"paymentTerms"`
	LeadTimeDays *int   `json:"leadTimeDays"`
}

func (r CreateSupplierRequest) Validate() error {
	var f fieldErrors
	f.required("name", r.Name)
	f.maxLen("name", r.Name, 200)
	f.required("email", r.Email)
	validateEmail(&f, r.Email)
	f.required("phone", r.Phone)
	validateTaxID(&f, "cnpj", r.CNPJ, 14)
	validateTaxID(&f, "cpf", r.CPF, 11)
	if r.LeadTimeDays != nil && *r.LeadTimeDays < 0 {
		f.add("leadTimeDays", "no puede ser negativo")
	}
	return f.err()
}

func (r CreateSupplierRequest) ToInput() inventory.SupplierInput {
	return inventory.SupplierInput{
		Name:         r.Name,
		CNPJ:         r.CNPJ,
		CPF:          r.CPF,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		PaymentTerms: r.PaymentTerms,
		LeadTimeDays: r.LeadTimeDays,
	}
}

// UpdateSupplierRequest actualización parcial de proveedor.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	CNPJ         *string `json:"cnpj"`
	CPF          *string `json:"cpf"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PaymentTerms *string `json:"paymentTerms"`
	LeadTimeDays *int    `json:"leadTimeDays"`
}

func (r UpdateSupplierRequest) Validate() error {
	var f fieldErrors
	if r.Name != nil {
		f.required("name", *r.Name)
		f.maxLen("name", *r.Name, 200)
	}
	if r.Email != nil {
		f.required("email", *r.Email)
		validateEmail(&f, *r.Email)
	}
	if r.Phone != nil {
		f.required("phone", *r.Phone)
	}
	if r.CNPJ != nil {
		validateTaxID(&f, "cnpj", *r.CNPJ, 14)
	}
	if r.CPF != nil {
		validateTaxID(&f, "cpf", *r.CPF, 11)
	}
	if r.LeadTimeDays != nil && *r.LeadTimeDays < 0 {
		f.add("leadTimeDays", "no puede ser negativo")
	}
	return f.err()
}

func (r UpdateSupplierRequest) ToPatch() inventory.SupplierPatch {
	return inventory.SupplierPatch{
		Name:         r.Name,
		CNPJ:         r.CNPJ,
		CPF:          r.CPF,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		PaymentTerms: r.PaymentTerms,
		LeadTimeDays: r.LeadTimeDays,
	}
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []entity.Supplier `json:"items"`
	Total int               `json:"total"`
}

func validateEmail(f *fieldErrors, email string) {
	if email != "" && !govalidator.IsEmail(email) {
		f.add("email", "email inválido")
	}
}

// validateTaxID acepta el documento con o sin máscara (12.345.678/0001-90).
func validateTaxID(f *fieldErrors, field, v string, digits int) {
	if v == "" {
		return
	}
	n := 0
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			n++
		case r == '.' || r == '/' || r == '-':
		default:
			f.add(field, "formato inválido")
			return
		}
	}
	if n != digits {
		f.add(field, "cantidad de dígitos inválida")
	}
}
