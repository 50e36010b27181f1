package domain

// Color is one selectable colorway of a product. Name is the identity
// key within a product's color list (case-sensitive, caller-enforced).
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type SizeStatus string

const (
	StatusAvailable   SizeStatus = "available"
	StatusLowStock    SizeStatus = "low-stock"
	StatusUnavailable SizeStatus = "unavailable"
)

// Size is one selectable size of a product. Status is denormalized from
// Stock; the store never recomputes it, only the admin form does.
type Size struct {
	Size   string     `json:"size"`
	Stock  int        `json:"stock"`
	Status SizeStatus `json:"status"`
}

// StatusForStock derives the display status from a stock count.
func StatusForStock(stock int) SizeStatus {
	switch {
	case stock <= 0:
		return StatusUnavailable
	case stock <= 2:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

const (
	CategoryWomen = "mujer"
	CategoryMen   = "hombre"
	CategoryKids  = "ninos"
)

// Categories in display order.
var Categories = []string{CategoryWomen, CategoryMen, CategoryKids}

func ValidCategory(c string) bool {
	return c == CategoryWomen || c == CategoryMen || c == CategoryKids
}

const (
	BadgeNew        = "Nuevo"
	BadgeBestSeller = "Más vendido"
	BadgeOnSale     = "Oferta"
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Category      string  `json:"category"` // mujer | hombre | ninos
	Type          string  `json:"type"`     // free text: calzas, pantalones, ...
	Description   string  `json:"description,omitempty"`
	Image         string  `json:"image"`
	Colors        []Color `json:"colors"`
	Sizes         []Size  `json:"sizes"`
	Badge         string  `json:"badge,omitempty"`
	IsNew         bool    `json:"isNew,omitempty"`
	IsOnSale      bool    `json:"isOnSale,omitempty"`
	IsBestSeller  bool    `json:"isBestSeller,omitempty"`
}

// ProductInput is a Product minus its id; the store assigns ids.
type ProductInput struct {
	Name          string
	Price         float64
	OriginalPrice float64
	Category      string
	Type          string
	Description   string
	Image         string
	Colors        []Color
	Sizes         []Size
	Badge         string
	IsNew         bool
	IsOnSale      bool
	IsBestSeller  bool
}

// ProductPatch carries a partial product update; nil fields are left
// untouched. Colors/Sizes replace wholesale when non-nil.
type ProductPatch struct {
	Name          *string
	Price         *float64
	OriginalPrice *float64
	Category      *string
	Type          *string
	Description   *string
	Image         *string
	Colors        []Color
	Sizes         []Size
	Badge         *string
	IsNew         *bool
	IsOnSale      *bool
	IsBestSeller  *bool
}

// CartItem is one cart line, keyed by (ProductID, SelectedColor.Name,
// SelectedSize.Size). Product is an owned snapshot taken at add time:
// price and details in the cart reflect what was added, not live
// catalog state.
type CartItem struct {
	ProductID     string  `json:"productId"`
	Product       Product `json:"product"`
	SelectedColor Color   `json:"selectedColor"`
	SelectedSize  Size    `json:"selectedSize"`
	Quantity      int     `json:"quantity"`
}

// State is the full persisted shape of the store: a direct structural
// encoding, no versioning.
type State struct {
	Products []Product  `json:"products"`
	Cart     []CartItem `json:"cart"`
	IsAdmin  bool       `json:"isAdmin"`
}
