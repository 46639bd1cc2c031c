package session

import (
	"encoding/json"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

// Manager is the one authoritative session object. The HTTP client and the
// route guard share a single instance by reference; nothing else reads the
// token storage directly.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	access  string
	refresh string
	user    *models.User
	locale  string
}

func NewManager(store Store, defaultLocale string) *Manager {
	if defaultLocale == "" {
		defaultLocale = "pt-BR"
	}
	m := &Manager{store: store, locale: defaultLocale}
	m.load()
	return m
}

func (m *Manager) load() {
	m.access = m.store.Get(KeyAccessToken)
	m.refresh = m.store.Get(KeyRefreshToken)
	if locale := m.store.Get(KeyLocale); locale != "" {
		m.locale = locale
	}
	if userJSON := m.store.Get(KeyUser); userJSON != "" {
		var user models.User
		if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
			m.user = &user
		}
	}
}

func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access
}

func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refresh
}

func (m *Manager) Locale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locale
}

func (m *Manager) SetLocale(locale string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locale = locale
	_ = m.store.Set(KeyLocale, locale)
}

func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// SetSession records a successful login or registration.
func (m *Manager) SetSession(user models.User, tokens models.AuthTokens) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	m.access = tokens.AccessToken
	m.refresh = tokens.RefreshToken
	_ = m.store.Set(KeyAccessToken, tokens.AccessToken)
	_ = m.store.Set(KeyRefreshToken, tokens.RefreshToken)
	m.persistUser(user)
}

// SetAccessToken records a silent refresh. The refresh token is replaced only
// when the server rotates it.
func (m *Manager) SetAccessToken(access, refresh string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	_ = m.store.Set(KeyAccessToken, access)
	if refresh != "" {
		m.refresh = refresh
		_ = m.store.Set(KeyRefreshToken, refresh)
	}
}

func (m *Manager) SetUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	m.persistUser(user)
}

func (m *Manager) persistUser(user models.User) {
	if data, err := json.Marshal(user); err == nil {
		_ = m.store.Set(KeyUser, string(data))
	}
}

// Clear wipes the session on logout or irrecoverable refresh failure. The
// locale preference survives.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	m.refresh = ""
	m.user = nil
	_ = m.store.Delete(KeyAccessToken)
	_ = m.store.Delete(KeyRefreshToken)
	_ = m.store.Delete(KeyUser)
}
