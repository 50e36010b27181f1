package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "romix/internal/log"
	"romix/internal/services"
	"romix/internal/store"
)

type CheckoutHandler struct {
	Store    *store.Store
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) Summary(c *fiber.Ctx) error {
	items := h.Store.Cart()
	return render(c, "checkout", fiber.Map{
		"Items":     items,
		"Total":     services.FormatPrice(h.Store.CartTotal()),
		"CartCount": h.Store.CartCount(),
	})
}

// SendWhatsApp hands the order off: it redirects to a wa.me link whose
// text parameter carries the formatted summary. An empty cart goes
// back to the cart page instead.
func (h *CheckoutHandler) SendWhatsApp(c *fiber.Ctx) error {
	items := h.Store.Cart()
	if len(items) == 0 {
		applog.Info(c, "checkout.empty", nil)
		return c.Redirect("/cart")
	}
	u := h.Checkout.WhatsAppURL(items, h.Store.CartTotal())
	applog.Audit(c, "checkout.whatsapp", map[string]any{"lines": len(items), "count": h.Store.CartCount()})
	return c.Redirect(u, fiber.StatusSeeOther)
}
