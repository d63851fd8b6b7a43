package domain

// AuditEntry records a privileged mutation for later admin review.
type AuditEntry struct {
	ID         string `db:"id" json:"id"`
	UserID     string `db:"user_id" json:"userId"`
	UserEmail  string `db:"user_email" json:"userEmail"`
	Action     string `db:"action" json:"action"`
	EntityType string `db:"entity_type" json:"entityType"`
	EntityID   string `db:"entity_id" json:"entityId"`
	Changes    string `db:"changes" json:"changes"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}

const (
	EntityUser         = "User"
	EntityProduct      = "Product"
	EntityOrder        = "Order"
	EntityWorkflow     = "Workflow"
	EntityNotification = "Notification"
)
