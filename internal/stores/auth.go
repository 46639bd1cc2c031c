package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
	"github.com/luizavanter/guialmeidapersonal/internal/session"
)

// ErrRoleNotAllowed rejects logins from the wrong portal, e.g. a trainer
// account on the student app.
var ErrRoleNotAllowed = errors.New("access denied for this role")

type LoginCredentials struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type AuthStore struct {
	mu      sync.RWMutex
	api     Doer
	session *session.Manager

	// requiredRole restricts which accounts may sign in; empty allows any.
	requiredRole string

	loading bool
	err     error

	// checked is set after the first successful /auth/me revalidation this
	// process.
	checked bool
}

func NewAuthStore(api Doer, sess *session.Manager, requiredRole string) *AuthStore {
	return &AuthStore{api: api, session: sess, requiredRole: requiredRole}
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *AuthStore) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *AuthStore) CurrentUser() *models.User {
	return s.session.User()
}

func (s *AuthStore) Login(ctx context.Context, creds LoginCredentials) (*models.User, error) {
	s.begin()

	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/login", creds, &resp); err != nil {
		s.finish(err)
		return nil, err
	}
	if s.requiredRole != "" && resp.User.Role != s.requiredRole {
		s.finish(ErrRoleNotAllowed)
		return nil, ErrRoleNotAllowed
	}

	s.session.SetSession(resp.User, resp.Tokens)
	s.markChecked()
	s.finish(nil)
	user := resp.User
	return &user, nil
}

func (s *AuthStore) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	s.begin()

	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/register", input, &resp); err != nil {
		s.finish(err)
		return nil, err
	}

	s.session.SetSession(resp.User, resp.Tokens)
	s.markChecked()
	s.finish(nil)
	user := resp.User
	return &user, nil
}

// Logout tells the server, but clears the local session regardless of the
// outcome.
func (s *AuthStore) Logout(ctx context.Context) {
	_ = s.api.Post(ctx, "/auth/logout", nil, nil)
	s.session.Clear()
	s.mu.Lock()
	s.checked = false
	s.mu.Unlock()
}

// CheckAuth restores a persisted session: with a stored token and cached user
// it revalidates once per process via /auth/me, clearing everything when the
// token turns out to be dead.
func (s *AuthStore) CheckAuth(ctx context.Context) (*models.User, error) {
	if s.session.AccessToken() == "" || s.session.User() == nil {
		return nil, nil
	}

	s.mu.RLock()
	checked := s.checked
	s.mu.RUnlock()
	if checked {
		return s.session.User(), nil
	}

	var user models.User
	if err := s.api.Get(ctx, "/auth/me", nil, &user); err != nil {
		s.session.Clear()
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return nil, err
	}

	s.session.SetUser(user)
	s.markChecked()
	return s.session.User(), nil
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *AuthStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}

func (s *AuthStore) markChecked() {
	s.mu.Lock()
	s.checked = true
	s.mu.Unlock()
}
