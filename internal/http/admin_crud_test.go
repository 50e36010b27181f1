package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"romix/internal/domain"
)

func TestAdminModeGatesCatalogEditing(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("mode off: want 403, got %d", resp.StatusCode)
	}

	resp = postForm(t, app, tok, "/admin/toggle", url.Values{})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/products" {
		t.Fatalf("toggle: want 302 to /admin/products, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if !st.IsAdmin() {
		t.Fatal("flag not flipped")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mode on: want 200, got %d", resp.StatusCode)
	}
}

func TestAdminCreateProduct(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)
	postForm(t, app, tok, "/admin/toggle", url.Values{})

	resp := postForm(t, app, tok, "/admin/products", url.Values{
		"name":       {"Campera Inflada Niños"},
		"price":      {"15999"},
		"category":   {"ninos"},
		"type":       {"camperas"},
		"image":      {"https://example.com/campera.jpg"},
		"badge":      {"Nuevo"},
		"color_name": {"Azul", "Rojo"},
		"color_hex":  {"#0000ff", "#ff0000"},
		"size_label": {"M", "L"},
		"size_stock": {"2", "0"},
	})
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create: want 302, got %d body=%s", resp.StatusCode, body)
	}

	ps := st.Products()
	if len(ps) != 4 {
		t.Fatalf("want 4 products, got %d", len(ps))
	}
	p := ps[3]
	if p.Name != "Campera Inflada Niños" || p.Category != domain.CategoryKids || !p.IsNew {
		t.Fatalf("bad created product: %+v", p)
	}
	if len(p.Colors) != 2 || len(p.Sizes) != 2 {
		t.Fatalf("variants not parsed: %+v", p)
	}
	// status derived from stock at the form boundary
	if p.Sizes[0].Status != domain.StatusLowStock || p.Sizes[1].Status != domain.StatusUnavailable {
		t.Fatalf("status not derived from stock: %+v", p.Sizes)
	}
}

func TestAdminCreateValidation(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)
	postForm(t, app, tok, "/admin/toggle", url.Values{})

	// missing image
	resp := postForm(t, app, tok, "/admin/products", url.Values{
		"name": {"Incompleto"}, "price": {"100"}, "category": {"mujer"}, "type": {"calzas"},
		"color_name": {"Negro"}, "color_hex": {"#000000"},
		"size_label": {"M"}, "size_stock": {"1"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing image: want 400, got %d", resp.StatusCode)
	}

	// no valid colors
	resp = postForm(t, app, tok, "/admin/products", url.Values{
		"name": {"Sin colores"}, "price": {"100"}, "category": {"mujer"}, "type": {"calzas"},
		"image":      {"https://example.com/x.jpg"},
		"color_name": {""}, "color_hex": {"#000000"},
		"size_label": {"M"}, "size_stock": {"1"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("no colors: want 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Agrega al menos un color y un talle") {
		t.Fatalf("advisory message missing:\n%s", body)
	}

	if len(st.Products()) != 3 {
		t.Fatal("invalid form reached the store")
	}
}

func TestAdminUpdateProduct(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)
	postForm(t, app, tok, "/admin/toggle", url.Values{})

	resp := postForm(t, app, tok, "/admin/products/1", url.Values{
		"name":       {"Calza Térmica Lycra Chupin"},
		"price":      {"8999"},
		"category":   {"mujer"},
		"type":       {"calzas"},
		"image":      {"https://example.com/calza.jpg"},
		"badge":      {"Oferta"},
		"color_name": {"Negro"},
		"color_hex":  {"#000000"},
		"size_label": {"1", "2"},
		"size_stock": {"5", "3"},
	})
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("update: want 302, got %d body=%s", resp.StatusCode, body)
	}

	p, ok := st.Product("1")
	if !ok {
		t.Fatal("product gone")
	}
	if p.Price != 8999 || p.Badge != domain.BadgeOnSale || !p.IsOnSale {
		t.Fatalf("update not applied: %+v", p)
	}
	if len(p.Colors) != 1 || len(p.Sizes) != 2 {
		t.Fatalf("variant lists not replaced: %+v", p)
	}
}

func TestAdminDeleteCascadesToCart(t *testing.T) {
	app, st := newTestApp(t)
	tok := csrfToken(t, app)
	postForm(t, app, tok, "/admin/toggle", url.Values{})

	postForm(t, app, tok, "/cart", url.Values{
		"productId": {"1"}, "color": {"Negro"}, "size": {"3"}, "qty": {"2"},
	})
	if len(st.Cart()) != 1 {
		t.Fatal("setup: cart line missing")
	}

	resp := postForm(t, app, tok, "/admin/products/1/delete", url.Values{})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("delete: want 302, got %d", resp.StatusCode)
	}
	if _, ok := st.Product("1"); ok {
		t.Fatal("product still in catalog")
	}
	if len(st.Cart()) != 0 {
		t.Fatalf("cart lines not cascaded: %+v", st.Cart())
	}
}
