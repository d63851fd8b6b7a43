package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/niel2512/hackathon-SmartFlow/internal/config"
	"github.com/niel2512/hackathon-SmartFlow/internal/http/handlers"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := repos.EnsureSchema(db); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	app.Use(requestid.New())
	deps := handlers.NewDeps(db, config.Config{Port: "8080", AppURL: "http://localhost:8080"})
	deps.Register(app)
	return app, db
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes the response body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, map[string]any, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded, raw
}

func createProduct(t *testing.T, app *fiber.App, name string, stock, minStock int, price float64) string {
	t.Helper()
	status, body, raw := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": name, "stock": stock, "minStock": minStock, "price": price,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("create product: status %d body %s", status, raw)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("no product id in %s", raw)
	}
	return id
}
