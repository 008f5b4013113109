package oauth

import (
	"net/http"

	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/config"
)

// ProvidersFromConfig builds a provider for every client registration that has a client id
func ProvidersFromConfig(cfg config.OAuthConfig, httpClient *http.Client) []authport.OAuthProvider {
	var providers []authport.OAuthProvider
	if cfg.Google.Enabled() {
		providers = append(providers, NewGoogleProvider(cfg.Google, httpClient))
	}
	if cfg.Kakao.Enabled() {
		providers = append(providers, NewKakaoProvider(cfg.Kakao, httpClient))
	}
	return providers
}
