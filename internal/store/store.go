package store

import (
	"sync"

	"github.com/google/uuid"

	"romix/internal/domain"
	applog "romix/internal/log"
)

// Persister is the external key-value binding the store snapshots into.
// Saves are fire-and-forget: the store logs failures and moves on.
type Persister interface {
	Save(domain.State) error
	Load() (domain.State, bool, error)
}

// Store owns the product catalog, the cart and the admin-mode flag. It
// is the single writer of both collections; consumers read copies and
// mutate only through the methods below.
type Store struct {
	mu       sync.Mutex
	products []domain.Product
	cart     []domain.CartItem
	isAdmin  bool
	state    Persister
}

// New builds a store rehydrated from the persister's slot, falling back
// to the built-in seed catalog when nothing has been saved yet.
func New(p Persister) (*Store, error) {
	s := &Store{state: p}
	st, ok, err := p.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		s.products = st.Products
		s.cart = st.Cart
		s.isAdmin = st.IsAdmin
	} else {
		s.products = SeedProducts()
	}
	return s, nil
}

func (s *Store) snapshot() domain.State {
	return domain.State{
		Products: append([]domain.Product(nil), s.products...),
		Cart:     append([]domain.CartItem(nil), s.cart...),
		IsAdmin:  s.isAdmin,
	}
}

// persist is called with the lock held after every mutation.
func (s *Store) persist() {
	if err := s.state.Save(s.snapshot()); err != nil {
		applog.Error(nil, "store.persist", err, nil)
	}
}

// ---------- Product operations ----------

func (s *Store) AddProduct(in domain.ProductInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, domain.Product{
		ID:            uuid.NewString(),
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
		IsNew:         in.IsNew,
		IsOnSale:      in.IsOnSale,
		IsBestSeller:  in.IsBestSeller,
	})
	s.persist()
}

// UpdateProduct merges the non-nil patch fields into the product with
// the given id. No-op when the id is unknown. Existing cart snapshots
// are left as they were taken.
func (s *Store) UpdateProduct(id string, patch domain.ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = *patch.OriginalPrice
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Colors != nil {
			p.Colors = patch.Colors
		}
		if patch.Sizes != nil {
			p.Sizes = patch.Sizes
		}
		if patch.Badge != nil {
			p.Badge = *patch.Badge
		}
		if patch.IsNew != nil {
			p.IsNew = *patch.IsNew
		}
		if patch.IsOnSale != nil {
			p.IsOnSale = *patch.IsOnSale
		}
		if patch.IsBestSeller != nil {
			p.IsBestSeller = *patch.IsBestSeller
		}
		s.persist()
		return
	}
}

// DeleteProduct removes the product and every cart line referencing it.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return
	}
	s.products = kept
	lines := s.cart[:0]
	for _, it := range s.cart {
		if it.ProductID != id {
			lines = append(lines, it)
		}
	}
	s.cart = lines
	s.persist()
}

// ---------- Cart operations ----------

func (s *Store) findLine(productID, colorName, sizeName string) int {
	for i, it := range s.cart {
		if it.ProductID == productID && it.SelectedColor.Name == colorName && it.SelectedSize.Size == sizeName {
			return i
		}
	}
	return -1
}

// AddToCart adds qty units of a variant. Unknown products are a silent
// no-op. An existing line for the same (product, color, size) triple is
// incremented instead of duplicated. Quantity is not clamped against
// the size's stock.
func (s *Store) AddToCart(productID string, color domain.Color, size domain.Size, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var prod *domain.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			prod = &s.products[i]
			break
		}
	}
	if prod == nil {
		return
	}

	if i := s.findLine(productID, color.Name, size.Size); i >= 0 {
		s.cart[i].Quantity += qty
	} else {
		s.cart = append(s.cart, domain.CartItem{
			ProductID:     productID,
			Product:       snapshotProduct(*prod),
			SelectedColor: color,
			SelectedSize:  size,
			Quantity:      qty,
		})
	}
	s.persist()
}

// snapshotProduct deep-copies a product so cart lines own their data.
func snapshotProduct(p domain.Product) domain.Product {
	p.Colors = append([]domain.Color(nil), p.Colors...)
	p.Sizes = append([]domain.Size(nil), p.Sizes...)
	return p
}

func (s *Store) RemoveFromCart(productID, colorName, sizeName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID, colorName, sizeName)
}

func (s *Store) removeLineLocked(productID, colorName, sizeName string) {
	i := s.findLine(productID, colorName, sizeName)
	if i < 0 {
		return
	}
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	s.persist()
}

// UpdateCartQuantity sets the matching line's quantity to exactly qty.
// qty <= 0 removes the line. Unknown lines are a no-op.
func (s *Store) UpdateCartQuantity(productID, colorName, sizeName string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		s.removeLineLocked(productID, colorName, sizeName)
		return
	}
	i := s.findLine(productID, colorName, sizeName)
	if i < 0 {
		return
	}
	s.cart[i].Quantity = qty
	s.persist()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persist()
}

// CartTotal sums price-at-add times quantity over all lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.cart {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.cart {
		n += it.Quantity
	}
	return n
}

// ---------- Admin mode ----------

// ToggleAdmin flips the admin display mode. This is a UI mode switch,
// not an authorization boundary.
func (s *Store) ToggleAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAdmin = !s.isAdmin
	s.persist()
}

func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

// ---------- Read accessors ----------

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductsByCategory returns the category's products, optionally
// narrowed to one type. typ == "" or "all" means no type filter.
func (s *Store) ProductsByCategory(category, typ string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Product
	for _, p := range s.products {
		if p.Category != category {
			continue
		}
		if typ != "" && typ != "all" && p.Type != typ {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Types lists the distinct product types within a category, in first-
// seen order, for the filter chips.
func (s *Store) Types(category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if p.Category != category || seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		out = append(out, p.Type)
	}
	return out
}
