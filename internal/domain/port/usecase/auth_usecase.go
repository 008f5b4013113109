package usecase

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
)

// LoginRedirect is where the client is sent to start a social login
type LoginRedirect struct {
	URL   string
	State string
}

// LoginResult is the outcome of a completed social login
type LoginResult struct {
	Token   string
	User    *entity.User
	Created bool
}

// AuthUseCase defines social login and session handling
type AuthUseCase interface {
	// LoginURL builds the provider consent URL with a fresh state value
	LoginURL(provider string) (*LoginRedirect, error)

	// Login completes the flow: exchange the code, load the profile,
	// find or create the user and issue a session token
	Login(ctx context.Context, provider string, code string) (*LoginResult, error)

	// Authenticate verifies a session token
	Authenticate(ctx context.Context, token string) (*auth.SessionClaims, error)

	// GetUser loads the account behind a session
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)
}
