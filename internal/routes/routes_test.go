package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/config"
	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	cfg := &config.Config{JWTSecret: "routes-test-secret", AppEnv: "test"}
	if err := RegisterRoutes(app, cfg, repository.NewStore()); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return app
}

type wireEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"errors"`
}

func request(t *testing.T, app *fiber.App, method, path, body, token string) (int, wireEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env wireEnvelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode envelope from %q: %v", raw, err)
		}
	}
	return resp.StatusCode, env
}

func TestProtectedResourcesRejectAnonymous(t *testing.T) {
	app := newTestApp(t)

	paths := []string{
		"/api/v1/students",
		"/api/v1/appointments",
		"/api/v1/workout-plans",
		"/api/v1/payments",
		"/api/v1/messages",
	}
	for _, path := range paths {
		status, env := request(t, app, http.MethodGet, path, "", "")
		if status != http.StatusUnauthorized {
			t.Errorf("%s status = %d, want 401", path, status)
		}
		if len(env.Errors) != 1 || env.Errors[0].Message == "" {
			t.Errorf("%s errors = %v, want envelope error", path, env.Errors)
		}
	}
}

func TestAuthThenResourceFlow(t *testing.T) {
	app := newTestApp(t)

	status, env := request(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"email": "coach@example.com", "password": "supersecret", "role": "trainer", "full_name": "Guilherme Almeida"}`, "")
	if status != http.StatusOK {
		t.Fatalf("register status = %d, errors = %v", status, env.Errors)
	}
	var auth struct {
		Tokens struct {
			AccessToken string `json:"accessToken"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatalf("decode auth: %v", err)
	}

	status, env = request(t, app, http.MethodPost, "/api/v1/appointments",
		`{"appointment": {"scheduled_at": "2025-05-01T09:00:00Z", "status": "scheduled"}}`, auth.Tokens.AccessToken)
	if status != http.StatusCreated {
		t.Fatalf("create appointment status = %d, errors = %v", status, env.Errors)
	}

	status, env = request(t, app, http.MethodGet, "/api/v1/appointments", "", auth.Tokens.AccessToken)
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	var list []map[string]any
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0]["scheduled_at"] != "2025-05-01T09:00:00Z" {
		t.Errorf("list = %v", list)
	}
}

func TestStudentProfileRouteWinsOverIDRoute(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "routes-test-secret", AppEnv: "test"}
	store := repository.NewStore()
	if err := RegisterRoutes(app, cfg, store); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	status, env := request(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"email": "ana@example.com", "password": "supersecret", "role": "student", "full_name": "Ana Souza"}`, "")
	if status != http.StatusOK {
		t.Fatalf("register status = %d, errors = %v", status, env.Errors)
	}
	var auth struct {
		User   map[string]any `json:"user"`
		Tokens struct {
			AccessToken string `json:"accessToken"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatalf("decode auth: %v", err)
	}

	store.Students.Insert(repository.Doc{
		"user_id":           auth.User["id"],
		"goals_description": "lose weight",
	})

	// "profile" must hit the dedicated handler, not match the :id segment.
	status, env = request(t, app, http.MethodGet, "/api/v1/students/profile", "", auth.Tokens.AccessToken)
	if status != http.StatusOK {
		t.Fatalf("profile status = %d, errors = %v", status, env.Errors)
	}
	var doc map[string]any
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if doc["goals_description"] != "lose weight" {
		t.Errorf("expected the caller's record, got %v", doc)
	}

	status, env = request(t, app, http.MethodPut, "/api/v1/students/profile",
		`{"goals_description": "gain muscle"}`, auth.Tokens.AccessToken)
	if status != http.StatusOK {
		t.Fatalf("profile update status = %d, errors = %v", status, env.Errors)
	}
}

func TestHealthAndDocsRouting(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "routes-test-secret", AppEnv: "development", EnableDocs: true}
	if err := RegisterRoutes(app, cfg, repository.NewStore()); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test docs: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("docs status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'none'") {
		t.Errorf("expected restrictive CSP, got %q", got)
	}

	jsonReq := httptest.NewRequest(http.MethodGet, "/docs/routes.json", nil)
	jsonResp, err := app.Test(jsonReq)
	if err != nil {
		t.Fatalf("app.Test routes.json: %v", err)
	}
	defer jsonResp.Body.Close()
	if jsonResp.StatusCode != http.StatusOK {
		t.Errorf("routes.json status = %d, want 200", jsonResp.StatusCode)
	}
}

func TestDocsDisabledOutsideDevelopment(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test docs: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("docs status = %d, want 404 when disabled", resp.StatusCode)
	}
}
