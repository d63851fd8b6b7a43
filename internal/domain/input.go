package domain

// Request payloads. Pointer fields distinguish "absent" from zero so that
// validation can flag missing required numbers and PATCH can stay partial.

type CreateProductInput struct {
	Name     string   `json:"name"`
	Stock    *int     `json:"stock"`
	MinStock *int     `json:"minStock"`
	Price    *float64 `json:"price"`
}

type UpdateProductInput struct {
	Name     *string  `json:"name"`
	Stock    *int     `json:"stock"`
	MinStock *int     `json:"minStock"`
	Price    *float64 `json:"price"`
}

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerName string           `json:"customerName"`
	Items        []OrderItemInput `json:"items"`
}

// UpdateOrderInput doubles as a status transition (Status set) and a
// Pending-only edit (CustomerName/Items set).
type UpdateOrderInput struct {
	Status       *OrderStatus     `json:"status"`
	CustomerName *string          `json:"customerName"`
	Items        []OrderItemInput `json:"items"`
}

type CreateRuleInput struct {
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
