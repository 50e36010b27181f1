package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "romix/internal/log"
	"romix/internal/store"
)

// RequireAdminMode gates the catalog-editing pages behind the store's
// admin display mode. This is a UI mode, not an authorization check:
// anyone can flip the flag through /admin/toggle.
func RequireAdminMode(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.IsAdmin() {
			applog.Security(c, "adminmode.off", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{
				"Message": "Activá el modo administrador para editar el catálogo",
			})
		}
		return c.Next()
	}
}
