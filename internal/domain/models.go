package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
)

func ValidStatus(s OrderStatus) bool {
	return s == StatusPending || s == StatusProcessing || s == StatusCompleted
}

type NotificationType string

const (
	NotifyOrder      NotificationType = "Order"
	NotifyStock      NotificationType = "Stock"
	NotifyAutomation NotificationType = "Automation"
)

// Workflow rules map a trigger label to an action label. They are declarative
// only and fire exclusively through the webhook endpoint.
const (
	TriggerNewOrder       = "New Order"
	TriggerLowStock       = "Low Stock"
	TriggerOrderCompleted = "Order Completed"

	ActionSendNotification = "Send Notification"
	ActionReduceStock      = "Reduce Stock"
	ActionAssignStaff      = "Assign Staff"
)

var (
	Triggers = []string{TriggerNewOrder, TriggerLowStock, TriggerOrderCompleted}
	Actions  = []string{ActionSendNotification, ActionReduceStock, ActionAssignStaff}
)

type Product struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Stock     int     `db:"stock" json:"stock"`
	MinStock  int     `db:"min_stock" json:"minStock"`
	Price     float64 `db:"price" json:"price"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

// LowStock reports whether the product sits strictly below its threshold.
func (p Product) LowStock() bool { return p.Stock < p.MinStock }

// OrderItem carries the price snapshotted at order time, not a live reference.
type OrderItem struct {
	ProductID string  `db:"product_id" json:"productId"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}

type Order struct {
	ID           string      `db:"id" json:"id"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	Items        []OrderItem `db:"-" json:"items"`
	Status       OrderStatus `db:"status" json:"status"`
	Total        float64     `db:"total" json:"total"`
	CreatedAt    string      `db:"created_at" json:"createdAt"`
	UpdatedAt    string      `db:"updated_at" json:"updatedAt"`
}

type WorkflowRule struct {
	ID        string `db:"id" json:"id"`
	Trigger   string `db:"trigger" json:"trigger"`
	Action    string `db:"action" json:"action"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// NotificationLog entries are append-only; nothing updates or deletes them.
type NotificationLog struct {
	ID        string           `db:"id" json:"id"`
	Message   string           `db:"message" json:"message"`
	Type      NotificationType `db:"type" json:"type"`
	CreatedAt string           `db:"created_at" json:"createdAt"`
}
