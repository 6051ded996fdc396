package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// CreateEmployeeRequest entrada para dar de alta un funcionario.
// Active ausente equivale a true.
type CreateEmployeeRequest struct {
	Name           string           `json:"name"`
	CPF            string           `json:"cpf"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Role           string           `json:"role"`
	AdmissionDate  string           `json:"admissionDate"` // 2006-01-02
	Notes          string           `json:"notes"`
	Shift          string           `json:"shift"`
	BaseSalary     *decimal.Decimal `json:"baseSalary"`
	CanAdjustStock bool             `json:"canAdjustStock"`
	Active         *bool            `json:"active"`
}

func (r CreateEmployeeRequest) Validate() error {
	var f fieldErrors
	f.required("name", r.Name)
	f.maxLen("name", r.Name, 200)
	f.required("cpf", r.CPF)
	validateTaxID(&f, "cpf", r.CPF, 11)
	f.required("phone", r.Phone)
	f.required("email", r.Email)
	validateEmail(&f, r.Email)
	if !entity.Role(r.Role).Valid() {
		f.add("role", "cargo inválido")
	}
	if !entity.Shift(r.Shift).Valid() {
		f.add("shift", "turno inválido")
	}
	if _, err := ParseDate(r.AdmissionDate); err != nil {
		f.add("admissionDate", "fecha inválida, use AAAA-MM-DD")
	}
	if r.BaseSalary != nil {
		nonNegative(&f, "baseSalary", *r.BaseSalary)
	}
	return f.err()
}

func (r CreateEmployeeRequest) ToInput() inventory.EmployeeInput {
	admission, _ := ParseDate(r.AdmissionDate)
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return inventory.EmployeeInput{
		Name:           r.Name,
		CPF:            r.CPF,
		Phone:          r.Phone,
		Email:          r.Email,
		Role:           entity.Role(r.Role),
		AdmissionDate:  admission,
		Notes:          r.Notes,
		Shift:          entity.Shift(r.Shift),
		BaseSalary:     r.BaseSalary,
		CanAdjustStock: r.CanAdjustStock,
		Active:         active,
	}
}

// UpdateEmployeeRequest actualización parcial de funcionario.
type UpdateEmployeeRequest struct {
	Name           *string                   `json:"name"`
	CPF            *string                   `json:"cpf"`
	Phone          *string                   `json:"phone"`
	Email          *string                   `json:"email"`
	Role           *string                   `json:"role"`
	AdmissionDate  *string                   `json:"admissionDate"`
	Notes          *string                   `json:"notes"`
	Shift          *string                   `json:"shift"`
	BaseSalary     Nullable[decimal.Decimal] `json:"baseSalary"` // null vacía el salario
	CanAdjustStock *bool                     `json:"canAdjustStock"`
	Active         *bool                     `json:"active"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var f fieldErrors
	if r.Name != nil {
		f.required("name", *r.Name)
		f.maxLen("name", *r.Name, 200)
	}
	if r.CPF != nil {
		f.required("cpf", *r.CPF)
		validateTaxID(&f, "cpf", *r.CPF, 11)
	}
	if r.Email != nil {
		f.required("email", *r.Email)
		validateEmail(&f, *r.Email)
	}
	if r.Role != nil && !entity.Role(*r.Role).Valid() {
		f.add("role", "cargo inválido")
	}
	if r.Shift != nil && !entity.Shift(*r.Shift).Valid() {
		f.add("shift", "turno inválido")
	}
	if r.AdmissionDate != nil {
		if _, err := ParseDate(*r.AdmissionDate); err != nil {
			f.add("admissionDate", "fecha inválida, use AAAA-MM-DD")
		}
	}
	if r.BaseSalary.Value != nil {
		nonNegative(&f, "baseSalary", *r.BaseSalary.Value)
	}
	return f.err()
}

func (r UpdateEmployeeRequest) ToPatch() inventory.EmployeePatch {
	p := inventory.EmployeePatch{
		Name:           r.Name,
		CPF:            r.CPF,
		Phone:          r.Phone,
		Email:          r.Email,
		Notes:          r.Notes,
		BaseSalary:     r.BaseSalary.Value,
		CanAdjustStock: r.CanAdjustStock,
		Active:         r.Active,

		ClearBaseSalary: r.BaseSalary.Clears(),
	}
	if r.Role != nil {
		role := entity.Role(*r.Role)
		p.Role = &role
	}
	if r.Shift != nil {
		shift := entity.Shift(*r.Shift)
		p.Shift = &shift
	}
	if r.AdmissionDate != nil {
		if t, err := ParseDate(*r.AdmissionDate); err == nil {
			p.AdmissionDate = &t
		}
	}
	return p
}

// EmployeeListResponse lista de funcionarios.
type EmployeeListResponse struct {
	Items []entity.Employee `json:"items"`
	Total int               `json:"total"`
}
