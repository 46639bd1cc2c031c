package guard

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
	"github.com/luizavanter/guialmeidapersonal/internal/session"
	"github.com/luizavanter/guialmeidapersonal/internal/stores"
)

type stubAPI struct {
	mePayload string
	meErr     error
	meCalls   int
}

func (s *stubAPI) Get(ctx context.Context, path string, query url.Values, out any) error {
	if path == "/auth/me" {
		s.meCalls++
		if s.meErr != nil {
			return s.meErr
		}
		return json.Unmarshal([]byte(s.mePayload), out)
	}
	return nil
}

func (s *stubAPI) GetPage(ctx context.Context, path string, query url.Values, out any) (*models.PaginationMeta, error) {
	return nil, s.Get(ctx, path, query, out)
}

func (s *stubAPI) Post(ctx context.Context, path string, body, out any) error { return nil }
func (s *stubAPI) Put(ctx context.Context, path string, body, out any) error  { return nil }
func (s *stubAPI) Patch(ctx context.Context, path string, body, out any) error {
	return nil
}
func (s *stubAPI) Delete(ctx context.Context, path string) error { return nil }

func seededSession(t *testing.T, role string) session.Store {
	t.Helper()
	memory := session.NewMemoryStore()
	sess := session.NewManager(memory, "pt-BR")
	sess.SetSession(models.User{ID: "u1", Email: "user@example.com", Role: role}, models.AuthTokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
	})
	return memory
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	sess := session.NewManager(session.NewMemoryStore(), "pt-BR")
	g := New(stores.NewAuthStore(&stubAPI{}, sess, ""))

	d := g.Check(context.Background(), Route{Path: "/students/42", RequiresAuth: true})
	if d.Allowed {
		t.Fatal("anonymous user must not enter a protected route")
	}
	want := "/login?redirect=" + url.QueryEscape("/students/42")
	if d.RedirectTo != want {
		t.Errorf("redirect = %q, want %q", d.RedirectTo, want)
	}
}

func TestGuardAllowsPublicRoutes(t *testing.T) {
	sess := session.NewManager(session.NewMemoryStore(), "pt-BR")
	g := New(stores.NewAuthStore(&stubAPI{}, sess, ""))

	d := g.Check(context.Background(), Route{Path: "/about"})
	if !d.Allowed || d.RedirectTo != "" {
		t.Errorf("open route must pass, got %+v", d)
	}
}

func TestGuardBouncesAuthenticatedFromLogin(t *testing.T) {
	api := &stubAPI{mePayload: `{"id": "u1", "role": "trainer"}`}
	sess := session.NewManager(seededSession(t, "trainer"), "pt-BR")
	g := New(stores.NewAuthStore(api, sess, ""))

	d := g.Check(context.Background(), Route{Path: "/login", Public: true})
	if d.Allowed || d.RedirectTo != "/" {
		t.Errorf("authenticated user on login must bounce home, got %+v", d)
	}
}

func TestGuardDeniesWrongRole(t *testing.T) {
	api := &stubAPI{mePayload: `{"id": "u1", "role": "student"}`}
	sess := session.NewManager(seededSession(t, "student"), "pt-BR")
	g := New(stores.NewAuthStore(api, sess, ""))

	d := g.Check(context.Background(), Route{Path: "/finance", RequiresAuth: true, RequiredRole: "trainer"})
	if d.Allowed || d.RedirectTo != "/" {
		t.Errorf("wrong role must bounce home, got %+v", d)
	}
}

func TestGuardRevalidatesOnceAcrossChecks(t *testing.T) {
	api := &stubAPI{mePayload: `{"id": "u1", "role": "trainer"}`}
	sess := session.NewManager(seededSession(t, "trainer"), "pt-BR")
	g := New(stores.NewAuthStore(api, sess, ""))

	for i := 0; i < 3; i++ {
		d := g.Check(context.Background(), Route{Path: "/dashboard", RequiresAuth: true})
		if !d.Allowed {
			t.Fatalf("check #%d: expected allowed, got %+v", i, d)
		}
	}
	if api.meCalls != 1 {
		t.Errorf("expected one revalidation, got %d", api.meCalls)
	}
}

func TestGuardDeadTokenFallsBackToLogin(t *testing.T) {
	api := &stubAPI{meErr: errors.New("unauthorized")}
	sess := session.NewManager(seededSession(t, "trainer"), "pt-BR")
	g := New(stores.NewAuthStore(api, sess, ""))

	d := g.Check(context.Background(), Route{Path: "/dashboard", RequiresAuth: true})
	if d.Allowed {
		t.Fatal("dead token must not enter a protected route")
	}
	want := "/login?redirect=" + url.QueryEscape("/dashboard")
	if d.RedirectTo != want {
		t.Errorf("redirect = %q, want %q", d.RedirectTo, want)
	}
	if sess.IsAuthenticated() {
		t.Error("dead token must clear the session")
	}
}
