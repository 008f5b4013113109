package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:         userModel.ID,
		SocialID:   userModel.SocialID,
		SocialType: entity.SocialType(userModel.SocialType),
		Nickname:   userModel.Nickname,
		Email:      userModel.Email,
		CreatedAt:  userModel.CreatedAt,
		UpdatedAt:  userModel.UpdatedAt,
	}
}

func (r *UserRepository) entityToModel(user *entity.User) model.User {
	return model.User{
		ID:         user.ID,
		SocialID:   user.SocialID,
		SocialType: string(user.SocialType),
		Nickname:   user.Nickname,
		Email:      user.Email,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate social identity", fields)
		return errs.ErrDuplicateUser
	}

	logFields := map[string]any{"error": err.Error(), "error_type": r.errorClassifier.Classify(err)}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	return wrapDatabaseError(err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{"user_id": id})
	}

	return r.modelToEntity(&userModel), nil
}

// GetBySocial retrieves a user by provider identity
func (r *UserRepository) GetBySocial(ctx context.Context, socialID string, socialType entity.SocialType) (*entity.User, error) {
	fields := map[string]any{
		"social_id":   socialID,
		"social_type": socialType,
	}
	r.logger.Debug("Getting user by social identity", fields)

	var userModel model.User
	result := r.db.WithContext(ctx).
		Where("social_id = ? AND social_type = ?", socialID, string(socialType)).
		First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by social identity", result.Error, fields)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	fields := map[string]any{
		"social_id":   user.SocialID,
		"social_type": user.SocialType,
	}
	r.logger.Debug("Creating new user", fields)

	userModel := r.entityToModel(user)
	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, fields)
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":     user.ID,
		"social_type": user.SocialType,
	})
	return nil
}

// Update stores nickname and email changes
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user", map[string]any{
		"user_id": user.ID,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"nickname":   user.Nickname,
			"email":      user.Email,
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, map[string]any{"user_id": user.ID})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("User updated successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}
