// Package authz centraliza la resolución del alcance de datos (tenant scope)
// a partir de los claims de sesión. Todos los handlers que tocan datos de un
// palenque pasan por Resolve antes de ejecutar cualquier consulta, en lugar de
// repetir la lógica rol-por-rol en cada handler.
package authz

import (
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// Scope es la capacidad de acceso a datos resuelta para una petición.
// Para el rol palenque, PalenqueID viene de los claims (nunca del cliente);
// para admin/superadmin viene del parámetro de la petición y CrossTenant
// queda en true.
type Scope struct {
	Role        string
	PalenqueID  int64
	CrossTenant bool
}

// Resolve construye el Scope de la petición.
//
// Reglas:
//   - rol palenque: el tenant sale de claimPalenqueID; si es nil se devuelve
//     domain.ErrTenantRequired ANTES de tocar la base (nunca se consulta con
//     filtro de tenant nulo). El parámetro requested se ignora: un caller de
//     tenant no elige tenant.
//   - admin/superadmin: el tenant sale de requested (>0); si falta, se
//     devuelve domain.ErrInvalidInput para que el handler pida el parámetro.
//   - rol vacío o desconocido: domain.ErrUnauthorized.
func Resolve(role string, claimPalenqueID *int64, requested int64) (Scope, error) {
	switch role {
	case entity.RolePalenque:
		if claimPalenqueID == nil || *claimPalenqueID <= 0 {
			return Scope{}, domain.ErrTenantRequired
		}
		return Scope{Role: role, PalenqueID: *claimPalenqueID}, nil
	case entity.RoleAdmin, entity.RoleSuperadmin:
		if requested <= 0 {
			return Scope{}, domain.ErrInvalidInput
		}
		return Scope{Role: role, PalenqueID: requested, CrossTenant: true}, nil
	default:
		return Scope{}, domain.ErrUnauthorized
	}
}

// CanManagePalenques indica si el rol puede administrar tenants y usuarios.
func CanManagePalenques(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleSuperadmin
}
