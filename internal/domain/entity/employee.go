package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role cargo de un funcionario.
type Role string

// Cargos válidos para Employee.
const (
	RoleManager   Role = "Gerente"
	RoleBartender Role = "Bartender"
	RoleWaiter    Role = "Garçom"
	RoleKitchen   Role = "Cozinha"
	RoleCashier   Role = "Caixa"
)

// Valid indica si el cargo pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleBartender, RoleWaiter, RoleKitchen, RoleCashier:
		return true
	}
	return false
}

// Shift turno de trabajo.
type Shift string

const (
	ShiftMorning   Shift = "manha"
	ShiftAfternoon Shift = "tarde"
	ShiftNight     Shift = "noite"
)

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftNight
}

// Employee representa un funcionario del bar.
// CanAdjustStock habilita el registro de movimientos de stock a su nombre.
type Employee struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	CPF            string           `json:"cpf"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Role           Role             `json:"role"`
	AdmissionDate  time.Time        `json:"admissionDate"`
	Notes          string           `json:"notes,omitempty"`
	Shift          Shift            `json:"shift"`
	BaseSalary     *decimal.Decimal `json:"baseSalary,omitempty"`
	CanAdjustStock bool             `json:"canAdjustStock"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
