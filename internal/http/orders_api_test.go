package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestOrdersAPI_LifecycleWithLowStockAlerts(t *testing.T) {
	app, _ := newTestApp(t)
	pid := createProduct(t, app, "Widget", 10, 5, 20)

	// Create: stock stays untouched.
	status, order, raw := doJSON(t, app, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "Acme Corp",
		"items":        []map[string]any{{"productId": pid, "quantity": 6}},
	}, "")
	if status != http.StatusOK {
		t.Fatalf("create order: status %d body %s", status, raw)
	}
	oid, _ := order["id"].(string)
	if order["status"] != "Pending" || order["total"].(float64) != 120 {
		t.Fatalf("bad order: %s", raw)
	}

	status, product, _ := doJSON(t, app, http.MethodGet, "/api/products/"+pid, nil, "")
	if status != http.StatusOK || product["stock"].(float64) != 10 {
		t.Fatalf("stock changed at creation: %v", product["stock"])
	}

	// Complete: decrement plus alert list in the response.
	status, updated, raw := doJSON(t, app, http.MethodPatch, "/api/orders/"+oid, map[string]any{
		"status": "Completed",
	}, "")
	if status != http.StatusOK {
		t.Fatalf("complete order: status %d body %s", status, raw)
	}
	alerts, ok := updated["lowStockAlerts"].([]any)
	if !ok || len(alerts) != 1 {
		t.Fatalf("want one lowStockAlert, body %s", raw)
	}
	if msg := alerts[0].(string); !strings.Contains(msg, "4 units remaining") {
		t.Fatalf("bad alert message: %s", msg)
	}

	_, product, _ = doJSON(t, app, http.MethodGet, "/api/products/"+pid, nil, "")
	if product["stock"].(float64) != 4 {
		t.Fatalf("want stock=4, got %v", product["stock"])
	}

	// The feed now has the order notification and the stock alert.
	status, _, raw = doJSON(t, app, http.MethodGet, "/api/notifications", nil, "")
	if status != http.StatusOK {
		t.Fatalf("notifications: status %d", status)
	}
	if !strings.Contains(string(raw), "New order created: Acme Corp") ||
		!strings.Contains(string(raw), "Low stock alert: Widget (4 units remaining)") {
		t.Fatalf("feed missing entries: %s", raw)
	}

	// Delete restores stock.
	status, body, _ := doJSON(t, app, http.MethodDelete, "/api/orders/"+oid, nil, "")
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("delete order failed: %v", body)
	}
	_, product, _ = doJSON(t, app, http.MethodGet, "/api/products/"+pid, nil, "")
	if product["stock"].(float64) != 10 {
		t.Fatalf("want stock restored to 10, got %v", product["stock"])
	}
}

func TestOrdersAPI_InsufficientStock(t *testing.T) {
	app, _ := newTestApp(t)
	pid := createProduct(t, app, "Widget", 3, 1, 20)

	status, body, raw := doJSON(t, app, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "Acme Corp",
		"items":        []map[string]any{{"productId": pid, "quantity": 5}},
	}, "")
	if status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d body %s", status, raw)
	}
	if body["code"] != "INSUFFICIENT_STOCK" {
		t.Fatalf("want INSUFFICIENT_STOCK, got %v", body["code"])
	}

	status, _, raw = doJSON(t, app, http.MethodGet, "/api/orders", nil, "")
	if status != http.StatusOK || strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("no order should exist, got %s", raw)
	}
}

func TestOrdersAPI_ValidationErrorShape(t *testing.T) {
	app, _ := newTestApp(t)

	status, body, raw := doJSON(t, app, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "",
		"items":        []map[string]any{},
	}, "")
	if status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", status)
	}
	if body["code"] != "VALIDATION_ERROR" || body["error"] != "Validation failed" {
		t.Fatalf("bad error shape: %s", raw)
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Fatalf("missing timestamp: %s", raw)
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) == 0 {
		t.Fatalf("missing field details: %s", raw)
	}
}

func TestOrdersAPI_EditNonPendingRejected(t *testing.T) {
	app, _ := newTestApp(t)
	pid := createProduct(t, app, "Widget", 10, 1, 20)

	_, order, _ := doJSON(t, app, http.MethodPost, "/api/orders", map[string]any{
		"customerName": "Acme Corp",
		"items":        []map[string]any{{"productId": pid, "quantity": 1}},
	}, "")
	oid := order["id"].(string)

	doJSON(t, app, http.MethodPatch, "/api/orders/"+oid, map[string]any{"status": "Processing"}, "")

	status, body, _ := doJSON(t, app, http.MethodPatch, "/api/orders/"+oid, map[string]any{
		"customerName": "Globex",
	}, "")
	if status != http.StatusBadRequest || body["code"] != "INVALID_OPERATION" {
		t.Fatalf("want INVALID_OPERATION, got %d %v", status, body["code"])
	}
}

func TestOrdersAPI_UnknownOrder(t *testing.T) {
	app, _ := newTestApp(t)
	status, body, _ := doJSON(t, app, http.MethodGet, "/api/orders/missing", nil, "")
	if status != http.StatusNotFound || body["code"] != "NOT_FOUND" {
		t.Fatalf("want coded 404, got %d %v", status, body["code"])
	}
}
