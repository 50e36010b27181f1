package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"romix/internal/domain"
	applog "romix/internal/log"
	"romix/internal/services"
	"romix/internal/store"
	"romix/internal/validate"
)

type CartHandler struct {
	Store *store.Store
}

type cartLine struct {
	Item     domain.CartItem
	Price    string
	Subtotal string
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	items := h.Store.Cart()
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			Item:     it,
			Price:    services.FormatPrice(it.Product.Price),
			Subtotal: services.FormatPrice(it.Product.Price * float64(it.Quantity)),
		})
	}
	return render(c, "cart", fiber.Map{
		"Lines":     lines,
		"Total":     services.FormatPrice(h.Store.CartTotal()),
		"CartCount": h.Store.CartCount(),
	})
}

// Add puts a (product, color, size) variant in the cart. The color and
// size must be ones the product actually offers; the store itself
// trusts its inputs, so that check happens here at the form boundary.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, ok := h.Store.Product(pid)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}

	colorName := strings.TrimSpace(c.FormValue("color"))
	sizeName := strings.TrimSpace(c.FormValue("size"))
	var color *domain.Color
	for i := range p.Colors {
		if p.Colors[i].Name == colorName {
			color = &p.Colors[i]
			break
		}
	}
	var size *domain.Size
	for i := range p.Sizes {
		if p.Sizes[i].Size == sizeName {
			size = &p.Sizes[i]
			break
		}
	}
	if color == nil || size == nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "variant", "product": pid})
		return c.Status(fiber.StatusBadRequest).SendString("Elegí un color y un talle")
	}

	h.Store.AddToCart(pid, *color, *size, qty)
	applog.Info(c, "cart.add", map[string]any{"product": pid, "color": colorName, "size": sizeName, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line's quantity to an absolute value; zero or negative
// removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid qty")
	}
	h.Store.UpdateCartQuantity(pid, c.FormValue("color"), c.FormValue("size"), qty)
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Store.RemoveFromCart(pid, c.FormValue("color"), c.FormValue("size"))
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Store.ClearCart()
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/cart")
}
