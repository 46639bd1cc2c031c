package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/repository"
	"github.com/luizavanter/guialmeidapersonal/pkg/utils"
)

const accessTokenTTL = 15 * time.Minute

type AuthHandler struct {
	users     *repository.UserRepository
	refresh   *repository.RefreshTokenRepository
	jwtSecret string
}

func NewAuthHandler(users *repository.UserRepository, refresh *repository.RefreshTokenRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		users:     users,
		refresh:   refresh,
		jwtSecret: jwtSecret,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if !utils.IsValidEmail(req.Email) {
		return respondFieldError(c, fiber.StatusUnprocessableEntity, "email", "Invalid email format", "INVALID_EMAIL")
	}
	if !utils.IsValidPassword(req.Password) {
		return respondFieldError(c, fiber.StatusUnprocessableEntity, "password", "Password must be at least 8 characters", "WEAK_PASSWORD")
	}
	if req.Role != "trainer" && req.Role != "student" {
		return respondFieldError(c, fiber.StatusUnprocessableEntity, "role", "Invalid role", "INVALID_ROLE")
	}

	user, err := h.users.Create(req.Email, req.Password, req.Role, req.FullName)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return respondFieldError(c, fiber.StatusConflict, "email", "Email already registered", "EMAIL_TAKEN")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to create account", "INTERNAL")
	}

	return h.respondAuth(c, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
	}

	return h.respondAuth(c, user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair issued, so a replayed token fails.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return respondError(c, fiber.StatusBadRequest, "Refresh token is required", "INVALID_BODY")
	}

	userID, err := h.refresh.Redeem(req.RefreshToken)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token", "SESSION_EXPIRED")
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token", "SESSION_EXPIRED")
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token", "INTERNAL")
	}
	return respondData(c, tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if userID, ok := c.Locals("user_id").(string); ok {
		h.refresh.RevokeAll(userID)
	}
	return respondData(c, fiber.Map{"loggedOut": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Invalid token", "UNAUTHORIZED")
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid token", "UNAUTHORIZED")
	}
	return respondData(c, userJSON(user))
}

func (h *AuthHandler) respondAuth(c *fiber.Ctx, user *repository.User) error {
	tokens, err := h.issueTokens(user)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token", "INTERNAL")
	}
	return respondData(c, fiber.Map{
		"user":   userJSON(user),
		"tokens": tokens,
	})
}

func (h *AuthHandler) issueTokens(user *repository.User) (fiber.Map, error) {
	access, err := utils.GenerateTokenWithTTL(user.ID, user.Role, h.jwtSecret, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := h.refresh.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"accessToken":  access,
		"refreshToken": refresh,
		"expiresIn":    int(accessTokenTTL.Seconds()),
	}, nil
}

// userJSON serializes a user the way the hosted API does, snake_case.
func userJSON(user *repository.User) fiber.Map {
	return fiber.Map{
		"id":          user.ID,
		"email":       user.Email,
		"role":        user.Role,
		"full_name":   user.FullName,
		"phone":       user.Phone,
		"locale":      user.Locale,
		"inserted_at": user.CreatedAt.Format(time.RFC3339),
		"updated_at":  user.UpdatedAt.Format(time.RFC3339),
	}
}
