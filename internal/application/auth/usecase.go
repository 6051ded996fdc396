package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/pkg/jwt"
)

// Roles de operador.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Account cuenta de operador configurada. PasswordHash es bcrypt.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
}

// AuthUseCase login de operadores contra las cuentas configuradas.
type AuthUseCase struct {
	accounts []Account
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. Las cuentas sin hash se ignoran.
func NewAuthUseCase(accounts []Account, jwtCfg JWTConfig) *AuthUseCase {
	enabled := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Username != "" && a.PasswordHash != "" {
			enabled = append(enabled, a)
		}
	}
	return &AuthUseCase{accounts: enabled, jwtCfg: jwtCfg}
}

// Login verifica usuario/password con bcrypt, genera JWT y retorna token + operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, ok := uc.find(in.Username)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, acc.ID, acc.Username, acc.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.UserResponse{ID: acc.ID, Username: acc.Username, Role: acc.Role},
	}, nil
}

func (uc *AuthUseCase) find(username string) (Account, bool) {
	for _, a := range uc.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return Account{}, false
}
