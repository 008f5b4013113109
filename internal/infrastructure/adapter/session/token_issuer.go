package session

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

const (
	// MinSecretBytes is the smallest HS256 key accepted
	MinSecretBytes = 32

	issuer = "yozi"
)

var ErrWeakSecret = errors.New("jwt secret must decode to at least 32 bytes")

// claims is the token payload
type claims struct {
	UserID     uint64 `json:"userId"`
	SocialID   string `json:"socialId"`
	SocialType string `json:"socialType"`
	Nickname   string `json:"nickname"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 session tokens
type TokenIssuer struct {
	secret       []byte
	expiration   time.Duration
	timeProvider coreport.TimeProvider
	parser       *jwt.Parser
}

// NewTokenIssuer creates an issuer from a base64 encoded secret
func NewTokenIssuer(encodedSecret string, expiration time.Duration, timeProvider coreport.TimeProvider) (*TokenIssuer, error) {
	secret, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("decode jwt secret: %w", err)
	}
	if len(secret) < MinSecretBytes {
		return nil, ErrWeakSecret
	}
	if expiration <= 0 {
		return nil, fmt.Errorf("%w: jwt expiration must be positive", errs.ErrInvalidArgument)
	}

	return &TokenIssuer{
		secret:       secret,
		expiration:   expiration,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}, nil
}

// Issue signs a token for the user
func (i *TokenIssuer) Issue(user *entity.User) (string, error) {
	if user == nil || user.ID == 0 {
		return "", errs.ErrInvalidUserID
	}

	// NumericDate has second precision
	now := i.timeProvider.Now().Truncate(time.Second)
	payload := claims{
		UserID:     user.ID,
		SocialID:   user.SocialID,
		SocialType: string(user.SocialType),
		Nickname:   user.Nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry
func (i *TokenIssuer) Verify(token string) (*authport.SessionClaims, error) {
	var payload claims
	parsed, err := i.parser.ParseWithClaims(token, &payload, func(*jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", errs.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidToken, err)
	}
	if !parsed.Valid || payload.UserID == 0 {
		return nil, errs.ErrInvalidToken
	}

	result := &authport.SessionClaims{
		UserID:     payload.UserID,
		SocialID:   payload.SocialID,
		SocialType: entity.SocialType(payload.SocialType),
		Nickname:   payload.Nickname,
	}
	if payload.IssuedAt != nil {
		result.IssuedAt = payload.IssuedAt.Time
	}
	if payload.ExpiresAt != nil {
		result.ExpiresAt = payload.ExpiresAt.Time
	}
	return result, nil
}
