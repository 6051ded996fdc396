package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// ProductInput campos de un producto sin ID ni timestamps (ya validados por la capa de formularios).
type ProductInput struct {
	Name       string
	SKU        string
	EAN        string
	Category   string
	SupplierID string
	Unit       entity.Unit
	Volume     int
	ABV        decimal.Decimal
	Cost       decimal.Decimal
	Price      decimal.Decimal
	Stock      decimal.Decimal
	MinStock   decimal.Decimal
	MaxStock   *decimal.Decimal
	Location   string
	ExpiryDate *time.Time
	ImageURL   string
}

// ProductPatch actualización parcial: solo se aplican los campos no nil.
// ClearMaxStock y ClearExpiryDate vacían el campo opcional y tienen prioridad sobre el valor.
type ProductPatch struct {
	Name       *string
	SKU        *string
	EAN        *string
	Category   *string
	SupplierID *string
	Unit       *entity.Unit
	Volume     *int
	ABV        *decimal.Decimal
	Cost       *decimal.Decimal
	Price      *decimal.Decimal
	Stock      *decimal.Decimal
	MinStock   *decimal.Decimal
	MaxStock   *decimal.Decimal
	Location   *string
	ExpiryDate *time.Time
	ImageURL   *string

	ClearMaxStock   bool
	ClearExpiryDate bool
}

// SupplierInput campos de un proveedor sin ID ni timestamps.
type SupplierInput struct {
	Name         string
	CNPJ         string
	CPF          string
	Email        string
	Phone        string
	Address      string
	PaymentTerms string
	LeadTimeDays *int
}

// SupplierPatch actualización parcial de proveedor.
type SupplierPatch struct {
	Name         *string
	CNPJ         *string
	CPF          *string
	Email        *string
	Phone        *string
	Address      *string
	PaymentTerms *string
	LeadTimeDays *int
}

// EmployeeInput campos de un funcionario sin ID ni timestamps.
type EmployeeInput struct {
	Name           string
	CPF            string
	Phone          string
	Email          string
	Role           entity.Role
	AdmissionDate  time.Time
	Notes          string
	Shift          entity.Shift
	BaseSalary     *decimal.Decimal
	CanAdjustStock bool
	Active         bool
}

// EmployeePatch actualización parcial de funcionario. ClearBaseSalary vacía el salario base.
type EmployeePatch struct {
	Name           *string
	CPF            *string
	Phone          *string
	Email          *string
	Role           *entity.Role
	AdmissionDate  *time.Time
	Notes          *string
	Shift          *entity.Shift
	BaseSalary     *decimal.Decimal
	CanAdjustStock *bool
	Active         *bool

	ClearBaseSalary bool
}

// MoveInput campos de un movimiento sin ID ni CreatedAt. Date vacío toma el instante actual.
type MoveInput struct {
	ProductID  string
	EmployeeID string
	Type       entity.Direction
	Quantity   decimal.Decimal
	UnitCost   *decimal.Decimal
	UnitPrice  *decimal.Decimal
	Reason     entity.Reason
	Notes      string
	Date       time.Time
}

// MoveFilter filtro de igualdad exacta sobre el log; campos vacíos no restringen.
type MoveFilter struct {
	ProductID  string
	Type       entity.Direction
	EmployeeID string
}

// SettingsPatch actualización parcial del registro de configuración.
type SettingsPatch struct {
	BrandName    *string
	LogoURL      *string
	Theme        *entity.Theme
	PrimaryColor *string
	AlertDays    *int
	Currency     *string
	Timezone     *string
}
