package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/persistence"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// AuthUseCase handles social login and session verification
type AuthUseCase struct {
	providers    map[entity.SocialType]authport.OAuthProvider
	tokens       authport.TokenIssuer
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	newState     func() string
}

// NewAuthUseCase creates a new AuthUseCase with one entry per provider type
func NewAuthUseCase(
	providers []authport.OAuthProvider,
	tokens authport.TokenIssuer,
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	registry := make(map[entity.SocialType]authport.OAuthProvider, len(providers))
	for _, p := range providers {
		registry[p.Type()] = p
	}

	return &AuthUseCase{
		providers:    registry,
		tokens:       tokens,
		uow:          uow,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
		newState:     uuid.NewString,
	}
}

// provider selects the strategy for a provider name
func (u *AuthUseCase) provider(name string) (authport.OAuthProvider, error) {
	socialType, err := entity.ParseSocialType(name)
	if err != nil {
		return nil, err
	}

	p, ok := u.providers[socialType]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not configured", errs.ErrUnsupportedProvider, socialType)
	}
	return p, nil
}

// LoginURL returns the consent page URL for the provider with a fresh state
func (u *AuthUseCase) LoginURL(provider string) (*usecase.LoginRedirect, error) {
	p, err := u.provider(provider)
	if err != nil {
		return nil, err
	}

	state := u.newState()
	return &usecase.LoginRedirect{
		URL:   p.AuthCodeURL(state),
		State: state,
	}, nil
}

// Login exchanges the code, resolves the user and issues a session token
func (u *AuthUseCase) Login(ctx context.Context, provider string, code string) (*usecase.LoginResult, error) {
	p, err := u.provider(provider)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: authorization code is required", errs.ErrInvalidArgument)
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		u.logger.Warn("OAuth code exchange failed", coreport.ErrorFields(err, map[string]any{
			"provider": p.Type(),
		}))
		return nil, err
	}

	profile, err := p.FetchProfile(ctx, token)
	if err != nil {
		u.logger.Warn("OAuth profile request failed", coreport.ErrorFields(err, map[string]any{
			"provider": p.Type(),
		}))
		return nil, err
	}
	profile.SocialType = p.Type()

	user, created, err := u.findOrCreate(ctx, *profile)
	if err != nil {
		return nil, err
	}

	session, err := u.tokens.Issue(user)
	if err != nil {
		u.logger.Error("Failed to issue session token", coreport.ErrorFields(err, map[string]any{
			"user_id": user.ID,
		}))
		return nil, err
	}

	u.logger.Info("User signed in", map[string]any{
		"user_id":  user.ID,
		"provider": user.SocialType,
		"created":  created,
	})

	return &usecase.LoginResult{Token: session, User: user, Created: created}, nil
}

// findOrCreate returns the user for the profile, creating it on first login.
// A concurrent first login loses on the unique index and reads the winner's row.
func (u *AuthUseCase) findOrCreate(ctx context.Context, profile entity.SocialProfile) (*entity.User, bool, error) {
	var (
		user    *entity.User
		created bool
	)

	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		repo := u.uow.GetUserRepository(txCtx)

		existing, err := repo.GetBySocial(txCtx, profile.SocialID, profile.SocialType)
		if err == nil {
			if existing.RefreshProfile(profile, u.timeProvider) {
				if err := repo.Update(txCtx, existing); err != nil {
					return err
				}
			}
			user = existing
			return nil
		}
		if !errs.IsNotFoundError(err) {
			return err
		}

		fresh, err := entity.NewUser(profile, u.timeProvider)
		if err != nil {
			return err
		}
		if err := repo.Create(txCtx, fresh); err != nil {
			return err
		}
		user = fresh
		created = true
		return nil
	})

	if errors.Is(err, errs.ErrDuplicateUser) {
		u.logger.Debug("Concurrent first login, reading existing user", map[string]any{
			"social_type": profile.SocialType,
		})
		user, err = u.userRepo.GetBySocial(ctx, profile.SocialID, profile.SocialType)
		created = false
	}
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}

// Authenticate verifies a session token
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (*authport.SessionClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrMissingToken
	}
	return u.tokens.Verify(token)
}

// GetUser loads a user by ID
func (u *AuthUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}
