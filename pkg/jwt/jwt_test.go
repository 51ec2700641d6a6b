package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/torressantiago/agencia-crm/pkg/jwt"
)

const (
	secret = "secreto-de-pruebas"
	issuer = "agencia-crm-test"
)

func TestJWT_GenerateAndParse_ConTenant(t *testing.T) {
	palenqueID := int64(3)
	tok, err := pkgjwt.Generate(secret, 7, &palenqueID, "palenque", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	require.NotNil(t, claims.PalenqueID)
	assert.Equal(t, int64(3), *claims.PalenqueID)
	assert.Equal(t, "palenque", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestJWT_GenerateAndParse_SinTenant(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, nil, "admin", issuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Nil(t, claims.PalenqueID, "un admin no lleva tenant en el token")
	assert.Equal(t, "admin", claims.Role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(secret, 1, nil, "admin", issuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, nil, "admin", issuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
