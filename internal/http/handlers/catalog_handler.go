package handlers

import (
	"github.com/gofiber/fiber/v2"

	"romix/internal/domain"
	applog "romix/internal/log"
	"romix/internal/store"
	"romix/internal/validate"
)

type CatalogHandler struct {
	Store *store.Store
}

var categoryTitles = map[string]string{
	domain.CategoryWomen: "Mujer",
	domain.CategoryMen:   "Hombre",
	domain.CategoryKids:  "Niños",
}

type categorySection struct {
	ID       string
	Title    string
	Products []domain.Product
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	var sections []categorySection
	for _, cat := range domain.Categories {
		sections = append(sections, categorySection{
			ID:       cat,
			Title:    categoryTitles[cat],
			Products: h.Store.ProductsByCategory(cat, ""),
		})
	}
	return render(c, "home", fiber.Map{
		"Sections":  sections,
		"CartCount": h.Store.CartCount(),
	})
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cat, ok := validate.Category(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Categoría no encontrada"})
	}
	typ := c.Query("type")
	return render(c, "category", fiber.Map{
		"Category":  cat,
		"Title":     categoryTitles[cat],
		"Type":      typ,
		"Types":     h.Store.Types(cat),
		"Products":  h.Store.ProductsByCategory(cat, typ),
		"CartCount": h.Store.CartCount(),
	})
}
