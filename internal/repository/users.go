package repository

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luizavanter/guialmeidapersonal/pkg/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("refresh token expired")
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	Phone        string
	Locale       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    map[string]*User{},
		byEmail: map[string]string{},
	}
}

func (r *UserRepository) Create(email, password, role, fullName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		FullName:     fullName,
		Locale:       "pt-BR",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byID[user.ID] = user
	r.byEmail[email] = user.ID
	return copyUser(user), nil
}

func (r *UserRepository) GetByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (r *UserRepository) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(r.byID[id]), nil
}

// Authenticate resolves the email and checks the password, returning
// ErrInvalidCredentials for both unknown accounts and wrong passwords so the
// two cases are indistinguishable to a caller.
func (r *UserRepository) Authenticate(email, password string) (*User, error) {
	user, err := r.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func copyUser(u *User) *User {
	c := *u
	return &c
}

type refreshRecord struct {
	userID    string
	expiresAt time.Time
}

// RefreshTokenRepository stores sha256 hashes of the opaque refresh tokens,
// never the tokens themselves.
type RefreshTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]refreshRecord
	ttl    time.Duration
}

func NewRefreshTokenRepository(ttl time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		tokens: map[string]refreshRecord{},
		ttl:    ttl,
	}
}

// Issue mints a fresh opaque token for userID and records its hash.
func (r *RefreshTokenRepository) Issue(userID string) (string, error) {
	token, err := utils.NewRefreshToken()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.tokens[utils.HashToken(token)] = refreshRecord{
		userID:    userID,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()
	return token, nil
}

// Redeem consumes a refresh token: valid tokens are deleted (rotation) and
// the owning user returned; expired or unknown tokens fail.
func (r *RefreshTokenRepository) Redeem(token string) (string, error) {
	hash := utils.HashToken(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.tokens[hash]
	if !ok {
		return "", ErrNotFound
	}
	delete(r.tokens, hash)
	if time.Now().After(record.expiresAt) {
		return "", ErrTokenExpired
	}
	return record.userID, nil
}

// RevokeAll drops every token owned by userID, used on logout.
func (r *RefreshTokenRepository) RevokeAll(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hash, record := range r.tokens {
		if record.userID == userID {
			delete(r.tokens, hash)
		}
	}
}
