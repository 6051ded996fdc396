package dto

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// UpdateSettingsRequest actualización parcial de la configuración (PUT /api/settings).
type UpdateSettingsRequest struct {
	BrandName    *string `json:"brandName"`
	LogoURL      *string `json:"logo"`
	Theme        *string `json:"theme"`
	PrimaryColor *string `json:"primaryColor"`
	AlertDays    *int    `json:"alertDays"`
	Currency     *string `json:"currency"`
	Timezone     *string `json:"timezone"`
}

func (r UpdateSettingsRequest) Validate() error {
	var f fieldErrors
	if r.BrandName != nil {
		f.required("brandName", *r.BrandName)
		f.maxLen("brandName", *r.BrandName, 120)
	}
	if r.LogoURL != nil {
		validateURL(&f, "logo", *r.LogoURL)
	}
	if r.Theme != nil && !entity.Theme(*r.Theme).Valid() {
		f.add("theme", "debe ser light o dark")
	}
	if r.PrimaryColor != nil && !govalidator.IsHexcolor(*r.PrimaryColor) {
		f.add("primaryColor", "color hexadecimal inválido")
	}
	if r.AlertDays != nil && (*r.AlertDays < 0 || *r.AlertDays > 365) {
		f.add("alertDays", "debe estar entre 0 y 365")
	}
	if r.Currency != nil && !govalidator.IsISO4217(strings.ToUpper(*r.Currency)) {
		f.add("currency", "código de moneda ISO 4217 inválido")
	}
	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil || *r.Timezone == "" {
			f.add("timezone", "zona horaria desconocida")
		}
	}
	return f.err()
}

func (r UpdateSettingsRequest) ToPatch() inventory.SettingsPatch {
	p := inventory.SettingsPatch{
		BrandName:    r.BrandName,
		LogoURL:      r.LogoURL,
		PrimaryColor: r.PrimaryColor,
		AlertDays:    r.AlertDays,
		Timezone:     r.Timezone,
	}
	if r.Theme != nil {
		t := entity.Theme(*r.Theme)
		p.Theme = &t
	}
	if r.Currency != nil {
		c := strings.ToUpper(*r.Currency)
		p.Currency = &c
	}
	return p
}
