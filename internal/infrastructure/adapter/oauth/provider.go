package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/config"
)

const (
	stageExchange = "exchange"
	stageUserInfo = "userinfo"

	defaultTimeout  = 10 * time.Second
	maxProfileBytes = 1 << 20
)

// profileDecoder turns a userinfo response body into a profile
type profileDecoder func(body []byte) (*entity.SocialProfile, error)

// Provider implements the authorization-code flow on top of x/oauth2.
// Google and Kakao differ only in endpoints and the userinfo payload.
type Provider struct {
	socialType  entity.SocialType
	config      oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	decode      profileDecoder
}

func newProvider(
	socialType entity.SocialType,
	cfg config.ProviderConfig,
	endpoint oauth2.Endpoint,
	userInfoURL string,
	decode profileDecoder,
	httpClient *http.Client,
) *Provider {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if cfg.UserInfoURL != "" {
		userInfoURL = cfg.UserInfoURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Provider{
		socialType: socialType,
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		httpClient:  httpClient,
		decode:      decode,
	}
}

// Type returns the social type of the provider
func (p *Provider) Type() entity.SocialType {
	return p.socialType
}

// AuthCodeURL builds the consent page URL
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *Provider) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func (p *Provider) fail(stage string, err error) error {
	return errs.NewProviderError(string(p.socialType), stage, err)
}

// Exchange trades the authorization code for an access token
func (p *Provider) Exchange(ctx context.Context, code string) (*authport.ProviderToken, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: authorization code is required", errs.ErrInvalidArgument)
	}

	token, err := p.config.Exchange(p.clientContext(ctx), code)
	if err != nil {
		return nil, p.fail(stageExchange, err)
	}

	return &authport.ProviderToken{
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		Expiry:      token.Expiry,
	}, nil
}

// FetchProfile calls the userinfo endpoint with the access token
func (p *Provider) FetchProfile(ctx context.Context, token *authport.ProviderToken) (*entity.SocialProfile, error) {
	oauthToken := &oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Expiry:      token.Expiry,
	}
	client := p.config.Client(p.clientContext(ctx), oauthToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, p.fail(stageUserInfo, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, p.fail(stageUserInfo, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, p.fail(stageUserInfo, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, p.fail(stageUserInfo, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 200)))
	}

	profile, err := p.decode(body)
	if err != nil {
		return nil, p.fail(stageUserInfo, err)
	}
	if profile.SocialID == "" {
		return nil, p.fail(stageUserInfo, fmt.Errorf("profile has no id"))
	}

	profile.SocialType = p.socialType
	return profile, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}

func decodeJSON(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode userinfo: %w", err)
	}
	return nil
}
