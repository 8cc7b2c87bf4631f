package service

import "github.com/nasaem/pos-api/internal/domain/entity"

// CatalogService serves the static product catalog. The catalog is hardcoded
// store data: the cart UI reads it, sales snapshot from it, nothing writes it.
type CatalogService struct{}

// NewCatalogService creates a new catalog service
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

var products = []entity.Product{
	{ID: "1", Category: "Oud", Name: "Maroki Chips (1 oz)", Price: 90, Image: "/images/products/maroki.jpg"},
	{ID: "2", Category: "Oud", Name: "Maroki Chips (2 oz)", Price: 150, Image: "/images/products/maroki.jpg"},
	{ID: "3", Category: "Oud", Name: "Maroki Chips (1/2 oz)", Price: 45, Image: "/images/products/maroki.jpg"},
	{ID: "4", Category: "Oud", Name: "Tiger Oud (1 oz)", Price: 90, Image: "/images/products/tiger_oud.jpg"},
	{ID: "5", Category: "Oud", Name: "Tiger Oud (2 oz)", Price: 150, Image: "/images/products/tiger_oud.jpg"},
	{ID: "6", Category: "Oud", Name: "Kalimantan (1 oz)", Price: 120},
	{ID: "7", Category: "Oud", Name: "Kalimantan (2 oz)", Price: 190},
	{ID: "8", Category: "Oud", Name: "Cambodian Zawaya (1 oz)", Price: 140},
	{ID: "9", Category: "Oud", Name: "Cambodian Zawaya (2 oz)", Price: 250},
	{ID: "10", Category: "Bakhoor", Name: "Royal Bakhoor (small)", Price: 45},
	{ID: "11", Category: "Bakhoor", Name: "Royal Bakhoor (large)", Price: 70},
	{ID: "12", Category: "Bakhoor", Name: "Jawhara Bakhoor (small)", Price: 45},
	{ID: "13", Category: "Bakhoor", Name: "Jawhara Bakhoor (large)", Price: 70},
	{ID: "14", Category: "Bakhoor", Name: "Mursaa Kalimat (small)", Price: 45},
	{ID: "15", Category: "Bakhoor", Name: "Mursaa Kalimat (large)", Price: 90},
	{ID: "16", Category: "Incense Sticks", Name: "Cambodian Sticks (large)", Price: 60},
	{ID: "17", Category: "Incense Sticks", Name: "Cambodian Sticks (medium)", Price: 50},
	{ID: "18", Category: "Incense Sticks", Name: "Cambodian Sticks (small)", Price: 30},
	{ID: "19", Category: "Khumra", Name: "Berry Khumra (small)", Price: 15},
	{ID: "20", Category: "Khumra", Name: "Berry Khumra (large)", Price: 30},
	{ID: "21", Category: "Khumra", Name: "Latafa Khumra (small)", Price: 15},
	{ID: "22", Category: "Khumra", Name: "Latafa Khumra (large)", Price: 30},
	{ID: "23", Category: "Musk", Name: "Rose Musk (small)", Price: 15},
	{ID: "24", Category: "Musk", Name: "Rose Musk (medium)", Price: 25},
	{ID: "25", Category: "Musk", Name: "Rose Musk (large)", Price: 30},
	{ID: "26", Category: "Musk", Name: "Berry Musk (small)", Price: 15},
	{ID: "27", Category: "Musk", Name: "Berry Musk (large)", Price: 30},
	{ID: "28", Category: "Oud Oil", Name: "Oud Oil (small)", Price: 40},
	{ID: "29", Category: "Oud Oil", Name: "Oud Oil (medium)", Price: 89},
	{ID: "30", Category: "Oud Oil", Name: "Oud Oil (large)", Price: 120},
	{ID: "31", Category: "Supplies", Name: "Charcoal (small)", Price: 20},
	{ID: "32", Category: "Supplies", Name: "Charcoal (large)", Price: 40},
	{ID: "33", Category: "Supplies", Name: "Lighter", Price: 20},
	{ID: "34", Category: "Supplies", Name: "Electric Burner", Price: 45},
}

// Products returns the full catalog in display order.
func (s *CatalogService) Products() []entity.Product {
	return products
}

// Categories returns the distinct category tags in first-appearance order.
func (s *CatalogService) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
