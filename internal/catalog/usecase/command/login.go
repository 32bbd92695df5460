package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/auth"
	"github.com/tair/catalog-service/pkg/logger"
)

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(p auth.Principal) (string, error)
}

// LoginCommand represents the command to log in to the dashboard
type LoginCommand struct {
	Email    string
	Password string
}

// UserView is the public part of a user
type UserView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// LoginHandler handles dashboard login
type LoginHandler struct {
	users  domain.UserRepository
	tokens TokenIssuer
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(users domain.UserRepository, tokens TokenIssuer) *LoginHandler {
	return &LoginHandler{users: users, tokens: tokens}
}

// Handle executes the login command. Only admins may log in. Accounts that
// still hold a plaintext password are upgraded to bcrypt on success.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := h.users.FindByEmail(ctx, cmd.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	if user.RoleName() != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: administrator role required", domain.ErrForbidden)
	}

	if !auth.IsHashed(user.Password) {
		h.upgradePassword(ctx, user, cmd.Password)
	}

	token, err := h.tokens.GenerateToken(auth.Principal{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.RoleName(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User: UserView{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

func (h *LoginHandler) upgradePassword(ctx context.Context, user *domain.User, password string) {
	hashed, err := auth.HashPassword(password)
	if err == nil {
		err = h.users.UpdatePassword(ctx, user.ID, hashed)
	}
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", user.ID).Msg("Failed to upgrade legacy password")
		return
	}
	logger.Info(ctx).Uint("user_id", user.ID).Msg("Upgraded legacy password to bcrypt")
}
