package models

type Order struct {
	ID     string      `json:"id"` // "ORD" + zero-padded sequence, e.g. ORD001
	Items  []OrderItem `json:"items"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Phone  string      `json:"phone"`
	Total  float64     `json:"total"`
	Status string      `json:"status"` // 'pending' until the admin panel moves it on
	Date   string      `json:"date"`
}

type OrderItem struct {
	ID       int     `json:"id"` // product id
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
