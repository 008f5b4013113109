package auth

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// ProviderToken is the access token returned by an OAuth provider after the code exchange
type ProviderToken struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// OAuthProvider drives the authorization-code flow of one social provider
type OAuthProvider interface {
	// Type returns the social type this provider signs users in with
	Type() entity.SocialType

	// AuthCodeURL builds the consent page URL carrying the given state
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for an access token
	//
	// Possible errors:
	// - ErrOAuthExchange: If the provider rejects the code or is unreachable
	Exchange(ctx context.Context, code string) (*ProviderToken, error)

	// FetchProfile loads the signed-in identity using the access token
	//
	// Possible errors:
	// - ErrOAuthExchange: If the profile request fails or lacks an id
	FetchProfile(ctx context.Context, token *ProviderToken) (*entity.SocialProfile, error)
}
