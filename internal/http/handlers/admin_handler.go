package handlers

import (
	"github.com/gofiber/fiber/v2"

	"romix/internal/domain"
	applog "romix/internal/log"
	"romix/internal/store"
	"romix/internal/validate"
)

type AdminHandler struct {
	Store *store.Store
}

// POST /admin/toggle — flips the admin display mode. Deliberately open
// to any caller; see the adminmode middleware note.
func (h *AdminHandler) Toggle(c *fiber.Ctx) error {
	h.Store.ToggleAdmin()
	on := h.Store.IsAdmin()
	applog.Audit(c, "adminmode.toggle", map[string]any{"on": on})
	if on {
		return c.Redirect("/admin/products")
	}
	return c.Redirect("/")
}

// GET /admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	return render(c, "admin_products", fiber.Map{"Products": h.Store.Products()})
}

// GET /admin/products/new
func (h *AdminHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "product_form", fiber.Map{"P": domain.Product{}, "IsEdit": false})
}

// POST /admin/products
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	in, errMsg := parseProductForm(c)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "product", "reason": errMsg})
		c.Status(fiber.StatusBadRequest)
		return render(c, "product_form", fiber.Map{"P": formEcho(in), "IsEdit": false, "Err": errMsg})
	}
	h.Store.AddProduct(in)
	applog.Audit(c, "admin.product.create", map[string]any{"name": in.Name})
	return c.Redirect("/admin/products")
}

// GET /admin/products/:id/edit
func (h *AdminHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	p, ok := h.Store.Product(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	return render(c, "product_form", fiber.Map{"P": p, "IsEdit": true})
}

// POST /admin/products/:id — the form always submits the whole product,
// so the patch sets every field.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	in, errMsg := parseProductForm(c)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "product", "reason": errMsg})
		p := formEcho(in)
		p.ID = id
		c.Status(fiber.StatusBadRequest)
		return render(c, "product_form", fiber.Map{"P": p, "IsEdit": true, "Err": errMsg})
	}
	h.Store.UpdateProduct(id, domain.ProductPatch{
		Name:          &in.Name,
		Price:         &in.Price,
		OriginalPrice: &in.OriginalPrice,
		Category:      &in.Category,
		Type:          &in.Type,
		Description:   &in.Description,
		Image:         &in.Image,
		Colors:        in.Colors,
		Sizes:         in.Sizes,
		Badge:         &in.Badge,
		IsNew:         &in.IsNew,
		IsOnSale:      &in.IsOnSale,
		IsBestSeller:  &in.IsBestSeller,
	})
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete — removing a product also drops its
// cart lines (the store cascades).
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	h.Store.DeleteProduct(id)
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.Redirect("/admin/products")
}

// parseProductForm validates the admin product form the way the shop's
// original form did: required name/price/category/type/image, then at
// least one complete color and size. Size status is recomputed from
// stock here, not in the store.
func parseProductForm(c *fiber.Ctx) (domain.ProductInput, string) {
	const msgRequired = "Por favor completa todos los campos requeridos"
	const msgVariants = "Agrega al menos un color y un talle válido"

	var in domain.ProductInput
	var ok bool
	if in.Name, ok = validate.Name(c.FormValue("name")); !ok {
		return in, msgRequired
	}
	if in.Price, ok = validate.Price(c.FormValue("price")); !ok || in.Price == 0 {
		return in, msgRequired
	}
	if in.Category, ok = validate.Category(c.FormValue("category")); !ok {
		return in, msgRequired
	}
	if in.Type, ok = validate.Name(c.FormValue("type")); !ok {
		return in, msgRequired
	}
	if in.Image, ok = validate.ImageURL(c.FormValue("image")); !ok {
		return in, msgRequired
	}
	in.OriginalPrice, _ = validate.Price(c.FormValue("originalPrice"))
	in.Description = c.FormValue("description")
	in.Badge = c.FormValue("badge")
	in.IsNew = in.Badge == domain.BadgeNew
	in.IsBestSeller = in.Badge == domain.BadgeBestSeller
	in.IsOnSale = in.Badge == domain.BadgeOnSale

	args := c.Request().PostArgs()
	names := args.PeekMulti("color_name")
	hexes := args.PeekMulti("color_hex")
	for i := range names {
		name := string(names[i])
		if name == "" || i >= len(hexes) {
			continue
		}
		hex, ok := validate.Hex(string(hexes[i]))
		if !ok {
			continue
		}
		in.Colors = append(in.Colors, domain.Color{Name: name, Hex: hex})
	}

	labels := args.PeekMulti("size_label")
	stocks := args.PeekMulti("size_stock")
	for i := range labels {
		label := string(labels[i])
		if label == "" || i >= len(stocks) {
			continue
		}
		stock, ok := validate.Stock(string(stocks[i]))
		if !ok {
			continue
		}
		in.Sizes = append(in.Sizes, domain.Size{
			Size:   label,
			Stock:  stock,
			Status: domain.StatusForStock(stock),
		})
	}

	if len(in.Colors) == 0 || len(in.Sizes) == 0 {
		return in, msgVariants
	}
	return in, ""
}

// formEcho turns a partially parsed input back into a product so the
// form can re-render what the user typed.
func formEcho(in domain.ProductInput) domain.Product {
	return domain.Product{
		Name:          in.Name,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		Type:          in.Type,
		Description:   in.Description,
		Image:         in.Image,
		Colors:        in.Colors,
		Sizes:         in.Sizes,
		Badge:         in.Badge,
	}
}
