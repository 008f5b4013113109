package auth

import (
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// SessionClaims are the facts carried by a session token
type SessionClaims struct {
	UserID     uint64
	SocialID   string
	SocialType entity.SocialType
	Nickname   string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	// Issue signs a session token for the user
	Issue(user *entity.User) (string, error)

	// Verify checks signature and expiry and returns the claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, tampered with or expired
	Verify(token string) (*SessionClaims, error)
}
