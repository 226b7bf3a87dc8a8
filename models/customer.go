package models

// Customer is an aggregate built up from orders. Identity is the exact email
// string on the order, no trimming or case folding.
type Customer struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
	LastOrder  string  `json:"lastOrder"`
}
