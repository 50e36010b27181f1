package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "romix/internal/log"
	"romix/internal/store"
	"romix/internal/validate"
)

type ProductHandler struct {
	Store *store.Store
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	p, ok := h.Store.Product(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	return render(c, "product", fiber.Map{"P": p, "CartCount": h.Store.CartCount()})
}
