package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// SocialType identifies the OAuth provider a user signed in with
type SocialType string

// Social types
const (
	SocialGoogle SocialType = "GOOGLE"
	SocialKakao  SocialType = "KAKAO"
)

// ParseSocialType resolves a provider name case-insensitively
func ParseSocialType(value string) (SocialType, error) {
	switch SocialType(strings.ToUpper(strings.TrimSpace(value))) {
	case SocialGoogle:
		return SocialGoogle, nil
	case SocialKakao:
		return SocialKakao, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrUnsupportedProvider, value)
	}
}

// SocialProfile is the identity reported by a provider after login
type SocialProfile struct {
	SocialID   string
	SocialType SocialType
	Nickname   string
	Email      string
}

// User represents an account created on first social login
type User struct {
	ID         uint64
	SocialID   string
	SocialType SocialType
	Nickname   string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a user from a provider profile
func NewUser(profile SocialProfile, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(profile.SocialID) == "" {
		return nil, fmt.Errorf("%w: social id is required", errs.ErrInvalidArgument)
	}
	if _, err := ParseSocialType(string(profile.SocialType)); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		SocialID:   profile.SocialID,
		SocialType: profile.SocialType,
		Nickname:   profile.Nickname,
		Email:      profile.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// RefreshProfile copies nickname and email from the provider.
// It returns true when anything changed.
func (u *User) RefreshProfile(profile SocialProfile, timeProvider coreport.TimeProvider) bool {
	if u.Nickname == profile.Nickname && u.Email == profile.Email {
		return false
	}
	u.Nickname = profile.Nickname
	u.Email = profile.Email
	u.UpdatedAt = timeProvider.Now()
	return true
}
