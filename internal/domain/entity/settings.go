package entity

import "time"

// Theme tema visual del panel.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Settings registro único de configuración del negocio. Nunca se elimina, solo se actualiza.
type Settings struct {
	BrandName    string    `json:"brandName"`
	LogoURL      string    `json:"logo,omitempty"`
	Theme        Theme     `json:"theme"`
	PrimaryColor string    `json:"primaryColor"`
	AlertDays    int       `json:"alertDays"` // anticipación en días para alertas de vencimiento
	Currency     string    `json:"currency"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Location resuelve la zona horaria configurada; UTC si no se reconoce.
func (s Settings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
