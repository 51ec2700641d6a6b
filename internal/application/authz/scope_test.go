package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/domain"
)

func ptr(v int64) *int64 { return &v }

// El rol palenque obtiene su tenant de los claims y nunca del request.
func TestResolve_PalenqueUsaTenantDelClaim(t *testing.T) {
	scope, err := authz.Resolve("palenque", ptr(3), 99)
	require.NoError(t, err)

	assert.Equal(t, int64(3), scope.PalenqueID,
		"el tenant debe salir del claim, no del parámetro del request")
	assert.False(t, scope.CrossTenant)
}

// Claim de tenant nulo: se rechaza antes de cualquier consulta.
func TestResolve_PalenqueSinTenant_TenantRequired(t *testing.T) {
	_, err := authz.Resolve("palenque", nil, 0)
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	_, err = authz.Resolve("palenque", ptr(0), 0)
	assert.ErrorIs(t, err, domain.ErrTenantRequired,
		"tenant cero en claims equivale a no tener tenant")
}

// Admin y superadmin eligen tenant por parámetro y cruzan tenants.
func TestResolve_AdminUsaTenantDelRequest(t *testing.T) {
	for _, role := range []string{"admin", "superadmin"} {
		scope, err := authz.Resolve(role, nil, 5)
		require.NoError(t, err, role)

		assert.Equal(t, int64(5), scope.PalenqueID)
		assert.True(t, scope.CrossTenant)
	}
}

// Admin sin palenque_id en el request: falta el parámetro.
func TestResolve_AdminSinParametro_InvalidInput(t *testing.T) {
	_, err := authz.Resolve("admin", nil, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Rol vacío o desconocido: sesión inválida.
func TestResolve_RolDesconocido_Unauthorized(t *testing.T) {
	_, err := authz.Resolve("", nil, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = authz.Resolve("vendedor", ptr(1), 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCanManagePalenques(t *testing.T) {
	assert.True(t, authz.CanManagePalenques("admin"))
	assert.True(t, authz.CanManagePalenques("superadmin"))
	assert.False(t, authz.CanManagePalenques("palenque"))
}
