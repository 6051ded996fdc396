package dto

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string           `json:"name"`
	SKU        string           `json:"sku"`
	EAN        string           `json:"ean"`
	Category   string           `json:"category"`
	SupplierID string           `json:"supplierId"`
	Unit       string           `json:"unit"`
	Volume     int              `json:"volumeMl"`
	ABV        decimal.Decimal  `json:"abv"`
	Cost       decimal.Decimal  `json:"cost"`
	Price      decimal.Decimal  `json:"price"`
	Stock      decimal.Decimal  `json:"stock"`
	MinStock   decimal.Decimal  `json:"minStock"`
	MaxStock   *decimal.Decimal `json:"maxStock"`
	Location   string           `json:"location"`
	ExpiryDate string           `json:"expiryDate"` // 2006-01-02
	ImageURL   string           `json:"image"`
}

// Validate aplica las reglas del formulario de producto.
func (r CreateProductRequest) Validate() error {
	var f fieldErrors
	f.required("name", r.Name)
	f.maxLen("name", r.Name, 200)
	f.required("sku", r.SKU)
	f.maxLen("sku", r.SKU, 60)
	f.required("category", r.Category)
	f.required("supplierId", r.SupplierID)
	if !entity.Unit(r.Unit).Valid() {
		f.add("unit", "unidad inválida")
	}
	validateEAN(&f, r.EAN)
	if r.Volume < 0 {
		f.add("volumeMl", "no puede ser negativo")
	}
	validateABV(&f, r.ABV)
	nonNegative(&f, "cost", r.Cost)
	nonNegative(&f, "price", r.Price)
	nonNegative(&f, "stock", r.Stock)
	nonNegative(&f, "minStock", r.MinStock)
	if r.MaxStock != nil && r.MaxStock.LessThan(r.MinStock) {
		f.add("maxStock", "debe ser mayor o igual a minStock")
	}
	if r.ExpiryDate != "" {
		if _, err := ParseDate(r.ExpiryDate); err != nil {
			f.add("expiryDate", "fecha inválida, use AAAA-MM-DD")
		}
	}
	validateURL(&f, "image", r.ImageURL)
	return f.err()
}

// ToInput convierte el request validado en la entrada del Store.
func (r CreateProductRequest) ToInput() inventory.ProductInput {
	in := inventory.ProductInput{
		Name:       strings.TrimSpace(r.Name),
		SKU:        strings.TrimSpace(r.SKU),
		EAN:        r.EAN,
		Category:   r.Category,
		SupplierID: r.SupplierID,
		Unit:       entity.Unit(r.Unit),
		Volume:     r.Volume,
		ABV:        r.ABV,
		Cost:       r.Cost,
		Price:      r.Price,
		Stock:      r.Stock,
		MinStock:   r.MinStock,
		MaxStock:   r.MaxStock,
		Location:   r.Location,
		ImageURL:   r.ImageURL,
	}
	if r.ExpiryDate != "" {
		if t, err := ParseDate(r.ExpiryDate); err == nil {
			in.ExpiryDate = &t
		}
	}
	return in
}

// UpdateProductRequest actualización parcial; los campos ausentes no se modifican.
// maxStock y expiryDate aceptan null para vaciarse; expiryDate también acepta "".
type UpdateProductRequest struct {
	Name       *string                   `json:"name"`
	SKU        *string                   `json:"sku"`
	EAN        *string                   `json:"ean"`
	Category   *string                   `json:"category"`
	SupplierID *string                   `json:"supplierId"`
	Unit       *string                   `json:"unit"`
	Volume     *int                      `json:"volumeMl"`
	ABV        *decimal.Decimal          `json:"abv"`
	Cost       *decimal.Decimal          `json:"cost"`
	Price      *decimal.Decimal          `json:"price"`
	Stock      *decimal.Decimal          `json:"stock"`
	MinStock   *decimal.Decimal          `json:"minStock"`
	MaxStock   Nullable[decimal.Decimal] `json:"maxStock"`
	Location   *string                   `json:"location"`
	ExpiryDate Nullable[string]          `json:"expiryDate"`
	ImageURL   *string                   `json:"image"`
}

func (r UpdateProductRequest) Validate() error {
	var f fieldErrors
	if r.Name != nil {
		f.required("name", *r.Name)
		f.maxLen("name", *r.Name, 200)
	}
	if r.SKU != nil {
		f.required("sku", *r.SKU)
		f.maxLen("sku", *r.SKU, 60)
	}
	if r.Category != nil {
		f.required("category", *r.Category)
	}
	if r.SupplierID != nil {
		f.required("supplierId", *r.SupplierID)
	}
	if r.Unit != nil && !entity.Unit(*r.Unit).Valid() {
		f.add("unit", "unidad inválida")
	}
	if r.EAN != nil {
		validateEAN(&f, *r.EAN)
	}
	if r.Volume != nil && *r.Volume < 0 {
		f.add("volumeMl", "no puede ser negativo")
	}
	if r.ABV != nil {
		validateABV(&f, *r.ABV)
	}
	for _, v := range []struct {
		field string
		value *decimal.Decimal
	}{{"cost", r.Cost}, {"price", r.Price}, {"stock", r.Stock}, {"minStock", r.MinStock}, {"maxStock", r.MaxStock.Value}} {
		if v.value != nil {
			nonNegative(&f, v.field, *v.value)
		}
	}
	if v := r.ExpiryDate.Value; v != nil && *v != "" {
		if _, err := ParseDate(*v); err != nil {
			f.add("expiryDate", "fecha inválida, use AAAA-MM-DD")
		}
	}
	if r.ImageURL != nil {
		validateURL(&f, "image", *r.ImageURL)
	}
	return f.err()
}

// ToPatch convierte el request validado en el patch del Store.
func (r UpdateProductRequest) ToPatch() inventory.ProductPatch {
	p := inventory.ProductPatch{
		Name:       r.Name,
		SKU:        r.SKU,
		EAN:        r.EAN,
		Category:   r.Category,
		SupplierID: r.SupplierID,
		Volume:     r.Volume,
		ABV:        r.ABV,
		Cost:       r.Cost,
		Price:      r.Price,
		Stock:      r.Stock,
		MinStock:   r.MinStock,
		MaxStock:   r.MaxStock.Value,
		Location:   r.Location,
		ImageURL:   r.ImageURL,

		ClearMaxStock: r.MaxStock.Clears(),
	}
	if r.Unit != nil {
		u := entity.Unit(*r.Unit)
		p.Unit = &u
	}
	switch v := r.ExpiryDate.Value; {
	case r.ExpiryDate.Clears(), v != nil && *v == "":
		p.ClearExpiryDate = true
	case v != nil:
		if t, err := ParseDate(*v); err == nil {
			p.ExpiryDate = &t
		}
	}
	return p
}

// StockAdjustmentRequest ajuste directo de stock (PATCH /api/products/:id/stock).
type StockAdjustmentRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

func (r StockAdjustmentRequest) Validate() error {
	var f fieldErrors
	if r.Delta.IsZero() {
		f.add("delta", "debe ser distinto de cero")
	}
	return f.err()
}

// ProductListResponse catálogo completo.
type ProductListResponse struct {
	Items []entity.Product `json:"items"`
	Total int              `json:"total"`
}

func validateEAN(f *fieldErrors, ean string) {
	if ean == "" {
		return
	}
	if !govalidator.IsNumeric(ean) || (len(ean) != 8 && len(ean) != 13) {
		f.add("ean", "debe tener 8 o 13 dígitos")
	}
}

func validateABV(f *fieldErrors, abv decimal.Decimal) {
	if abv.IsNegative() || abv.GreaterThan(hundred) {
		f.add("abv", "debe estar entre 0 y 100")
	}
}

func validateURL(f *fieldErrors, field, v string) {
	if v != "" && !govalidator.IsURL(v) {
		f.add(field, "URL inválida")
	}
}

func nonNegative(f *fieldErrors, field string, v decimal.Decimal) {
	if v.IsNegative() {
		f.add(field, "no puede ser negativo")
	}
}
