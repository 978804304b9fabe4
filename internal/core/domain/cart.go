package domain

// CartItem references a Product by id. A cart holds at most one item
// per product; quantity is always >= 1.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
