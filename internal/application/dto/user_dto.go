package dto

import "time"

// LoginRequest entrada para login del operador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var f fieldErrors
	f.required("username", r.Username)
	f.required("password", r.Password)
	return f.err()
}

// UserResponse operador autenticado.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
