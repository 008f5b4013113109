package oauth

import (
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/config"
)

const (
	kakaoUserInfoURL     = "https://kapi.kakao.com/v2/user/me"
	kakaoDefaultNickname = "카카오 사용자"
)

type kakaoUserInfo struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
}

// NewKakaoProvider creates the Kakao login provider
func NewKakaoProvider(cfg config.ProviderConfig, httpClient *http.Client) *Provider {
	endpoint := endpoints.KaKao
	// Kakao reads client_secret from the form body
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	return newProvider(entity.SocialKakao, cfg, endpoint, kakaoUserInfoURL, decodeKakaoProfile, httpClient)
}

func decodeKakaoProfile(body []byte) (*entity.SocialProfile, error) {
	var info kakaoUserInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}

	nickname := info.Properties.Nickname
	if nickname == "" {
		nickname = kakaoDefaultNickname
	}

	var socialID string
	if info.ID != 0 {
		socialID = strconv.FormatInt(info.ID, 10)
	}

	return &entity.SocialProfile{
		SocialID: socialID,
		Nickname: nickname,
		Email:    info.KakaoAccount.Email,
	}, nil
}
