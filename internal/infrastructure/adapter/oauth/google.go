package oauth

import (
	"net/http"

	"golang.org/x/oauth2/endpoints"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/config"
)

const (
	googleUserInfoURL     = "https://openidconnect.googleapis.com/v1/userinfo"
	googleDefaultNickname = "구글 사용자"
)

type googleUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewGoogleProvider creates the Google OpenID Connect provider
func NewGoogleProvider(cfg config.ProviderConfig, httpClient *http.Client) *Provider {
	return newProvider(entity.SocialGoogle, cfg, endpoints.Google, googleUserInfoURL, decodeGoogleProfile, httpClient)
}

func decodeGoogleProfile(body []byte) (*entity.SocialProfile, error) {
	var info googleUserInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}

	nickname := info.Name
	if nickname == "" {
		nickname = googleDefaultNickname
	}

	return &entity.SocialProfile{
		SocialID: info.Sub,
		Nickname: nickname,
		Email:    info.Email,
	}, nil
}
