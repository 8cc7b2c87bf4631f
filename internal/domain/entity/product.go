package entity

// Product is one entry of the static storefront catalog. The catalog is
// hardcoded data used to populate the cart before checkout; it is never
// persisted and sales keep their own snapshots of name, price and category.
type Product struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}
