package persistence

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetBySocial retrieves a user by the provider identity pair
	// Used on every OAuth callback to find an existing account
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has signed in with this identity yet
	// - ErrDatabaseConnection: If database connection fails
	GetBySocial(ctx context.Context, socialID string, socialType entity.SocialType) (*entity.User, error)

	// Create creates a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the (social id, social type) pair is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update stores nickname and email changes
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error
}
