package services

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"romix/internal/domain"
)

var esAR = message.NewPrinter(language.MustParse("es-AR"))

// FormatPrice renders an amount the way the shop displays pesos:
// "$ 8.499", no decimals.
func FormatPrice(v float64) string {
	return esAR.Sprintf("$ %.0f", v)
}

// CheckoutService turns the current cart into a prefilled WhatsApp
// message for the shop's contact number. The store exposes no
// formatting itself; this is its consumer.
type CheckoutService struct {
	Phone string
}

func NewCheckoutService(phone string) *CheckoutService {
	return &CheckoutService{Phone: phone}
}

// OrderMessage builds the human-readable order summary: one numbered
// block per cart line, then the total.
func (s *CheckoutService) OrderMessage(items []domain.CartItem, total float64) string {
	var b strings.Builder
	b.WriteString("¡Hola! Me interesa realizar el siguiente pedido:\n\n")
	for i, it := range items {
		esAR.Fprintf(&b, "%d. %s\n", i+1, it.Product.Name)
		esAR.Fprintf(&b, "   Color: %s\n", it.SelectedColor.Name)
		esAR.Fprintf(&b, "   Talle: %s\n", it.SelectedSize.Size)
		esAR.Fprintf(&b, "   Cantidad: %d\n", it.Quantity)
		esAR.Fprintf(&b, "   Precio: %s\n\n", FormatPrice(it.Product.Price*float64(it.Quantity)))
	}
	b.WriteString("TOTAL: " + FormatPrice(total) + "\n\n")
	b.WriteString("¡Espero tu respuesta!")
	return b.String()
}

// WhatsAppURL returns the wa.me link carrying the order summary as a
// percent-encoded text payload.
func (s *CheckoutService) WhatsAppURL(items []domain.CartItem, total float64) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + s.Phone,
		RawQuery: url.Values{"text": {s.OrderMessage(items, total)}}.Encode(),
	}
	return u.String()
}
