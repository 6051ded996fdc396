package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carneiro-api/internal/application/auth"
	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/pkg/jwt"
)

func newUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("caipirinha"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase([]auth.Account{
		{ID: "op-admin", Username: "carneiro", PasswordHash: string(hash), Role: auth.RoleAdmin},
		{ID: "op-2", Username: "sem-senha", Role: auth.RoleOperator},
	}, auth.JWTConfig{Secret: "secreto", ExpMinutes: 60, Issuer: "carneiro-api"})
}

func TestLogin_IssuesTokenWithRole(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "carneiro", Password: "caipirinha"})
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "op-admin", claims.UserID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, "carneiro", out.User.Username)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "carneiro", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "caipirinha"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "sem-senha", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "cuenta sin hash deshabilitada")
}
