package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

// FieldError reports one invalid field; lists of these become the `details`
// payload of a VALIDATION_ERROR response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Product(in domain.CreateProductInput) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Product name is required and must be a non-empty string"})
	}
	if in.Stock == nil || *in.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "Stock must be a non-negative number"})
	}
	if in.MinStock == nil || *in.MinStock < 0 {
		errs = append(errs, FieldError{Field: "minStock", Message: "Minimum stock must be a non-negative number"})
	}
	if in.Price == nil || *in.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "Price must be a non-negative number"})
	}
	return errs
}

func ProductUpdate(in domain.UpdateProductInput) []FieldError {
	var errs []FieldError
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Product name must be a non-empty string"})
	}
	if in.Price != nil && *in.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "Price must be a non-negative number"})
	}
	return errs
}

func orderItems(items []domain.OrderItemInput) []FieldError {
	var errs []FieldError
	if len(items) == 0 {
		return []FieldError{{Field: "items", Message: "Order must contain at least one item"}}
	}
	for i, it := range items {
		if it.ProductID == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("items[%d].productId", i), Message: "Product ID is required"})
		}
		if it.Quantity <= 0 {
			errs = append(errs, FieldError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "Quantity must be a positive number"})
		}
	}
	return errs
}

func Order(in domain.CreateOrderInput) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	errs = append(errs, orderItems(in.Items)...)
	return errs
}

func OrderUpdate(in domain.UpdateOrderInput) []FieldError {
	var errs []FieldError
	if in.Status != nil && !domain.ValidStatus(*in.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid order status"})
	}
	if in.CustomerName != nil && strings.TrimSpace(*in.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if in.Items != nil {
		errs = append(errs, orderItems(in.Items)...)
	}
	return errs
}

func WorkflowRule(in domain.CreateRuleInput) []FieldError {
	var errs []FieldError
	if !contains(domain.Triggers, in.Trigger) {
		errs = append(errs, FieldError{Field: "trigger", Message: "Trigger must be one of: " + strings.Join(domain.Triggers, ", ")})
	}
	if !contains(domain.Actions, in.Action) {
		errs = append(errs, FieldError{Field: "action", Message: "Action must be one of: " + strings.Join(domain.Actions, ", ")})
	}
	return errs
}

func Register(in domain.RegisterInput) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !Email(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "A valid email is required"})
	}
	if len(in.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleStaff {
		errs = append(errs, FieldError{Field: "role", Message: "Role must be Admin or Staff"})
	}
	return errs
}

func Email(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= 100 && reEmail.MatchString(s)
}

// ID validates a simple resource identifier from a path segment.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
