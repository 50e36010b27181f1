package store

import "romix/internal/domain"

// SeedProducts is the built-in catalog used the first time the shop
// runs, before anything has been persisted.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Calza Térmica Lycra Chupin",
			Price:         8499,
			OriginalPrice: 9999,
			Category:      domain.CategoryWomen,
			Type:          "calzas",
			Image:         "https://via.placeholder.com/300x300?text=Calza+Térmica+Lycra",
			Colors: []domain.Color{
				{Name: "Negro", Hex: "#000000"},
				{Name: "Gris oscuro", Hex: "#333333"},
				{Name: "Marrón", Hex: "#654321"},
			},
			Sizes: []domain.Size{
				{Size: "1", Stock: 5, Status: domain.StatusAvailable},
				{Size: "2", Stock: 3, Status: domain.StatusAvailable},
				{Size: "3", Stock: 7, Status: domain.StatusAvailable},
				{Size: "4", Stock: 4, Status: domain.StatusAvailable},
				{Size: "5", Stock: 2, Status: domain.StatusAvailable},
				{Size: "6", Stock: 1, Status: domain.StatusLowStock},
				{Size: "7", Stock: 6, Status: domain.StatusAvailable},
				{Size: "8", Stock: 3, Status: domain.StatusAvailable},
			},
			Badge: domain.BadgeNew,
			IsNew: true,
		},
		{
			ID:            "2",
			Name:          "Pantalón Jogger Térmico Lycra",
			Price:         12999,
			OriginalPrice: 14999,
			Category:      domain.CategoryWomen,
			Type:          "pantalones",
			Image:         "https://via.placeholder.com/300x300?text=Pantalón+Jogger+Térmico",
			Colors: []domain.Color{
				{Name: "Negro", Hex: "#000000"},
				{Name: "Marrón", Hex: "#654321"},
				{Name: "Gris oscuro", Hex: "#333333"},
			},
			Sizes: []domain.Size{
				{Size: "1", Stock: 4, Status: domain.StatusAvailable},
				{Size: "2", Stock: 3, Status: domain.StatusAvailable},
				{Size: "3", Stock: 5, Status: domain.StatusAvailable},
				{Size: "4", Stock: 2, Status: domain.StatusAvailable},
				{Size: "5", Stock: 6, Status: domain.StatusAvailable},
				{Size: "6", Stock: 3, Status: domain.StatusAvailable},
				{Size: "7", Stock: 4, Status: domain.StatusAvailable},
				{Size: "8", Stock: 2, Status: domain.StatusAvailable},
			},
			Badge:        domain.BadgeBestSeller,
			IsBestSeller: true,
		},
		{
			ID:            "3",
			Name:          "Pantalón Algodón Frisado Premium",
			Price:         16999,
			OriginalPrice: 19999,
			Category:      domain.CategoryMen,
			Type:          "pantalones",
			Image:         "https://via.placeholder.com/300x300?text=Pantalón+Algodón+Frisado",
			Colors: []domain.Color{
				{Name: "Negro", Hex: "#000000"},
				{Name: "Gris oscuro", Hex: "#333333"},
				{Name: "Marrón", Hex: "#654321"},
			},
			Sizes: []domain.Size{
				{Size: "1", Stock: 3, Status: domain.StatusAvailable},
				{Size: "2", Stock: 4, Status: domain.StatusAvailable},
				{Size: "3", Stock: 2, Status: domain.StatusAvailable},
				{Size: "4", Stock: 5, Status: domain.StatusAvailable},
				{Size: "5", Stock: 3, Status: domain.StatusAvailable},
				{Size: "6", Stock: 4, Status: domain.StatusAvailable},
				{Size: "7", Stock: 2, Status: domain.StatusAvailable},
				{Size: "8", Stock: 3, Status: domain.StatusAvailable},
			},
		},
	}
}
