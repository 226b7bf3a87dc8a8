package models

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // 'tops', 'bottoms' or 'accessories'
	Size        string  `json:"size"`
	Color       string  `json:"color"` // hex color used by the storefront cards
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// InventoryItem is the reduced projection of a product used by the admin
// panel's inventory table.
type InventoryItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}
