package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/pkg/jwt"
)

// RouteGuard protege las páginas del panel (no la API JSON) con redirecciones:
//
//   - paths con prefijo /admin: si el rol no es admin ni superadmin se
//     redirige al landing "/".
//   - paths con prefijo /dashboard: si no hay claim de rol (sesión ausente o
//     token inválido) se redirige a "/login".
//   - cualquier otro path pasa sin tocar.
//
// Un token ausente o ilegible cuenta como "no autenticado", nunca como error:
// el guard jamás responde un payload de error, solo redirige o deja pasar.
// No guarda estado entre peticiones; la decisión es función pura de
// (path, claims).
func RouteGuard(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		isAdmin := strings.HasPrefix(path, "/admin")
		isDashboard := strings.HasPrefix(path, "/dashboard")
		if !isAdmin && !isDashboard {
			return c.Next()
		}

		role := ""
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				role = claims.Role
			}
		}

		if isAdmin && role != entity.RoleAdmin && role != entity.RoleSuperadmin {
			return c.Redirect("/", fiber.StatusFound)
		}
		if isDashboard && role == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
