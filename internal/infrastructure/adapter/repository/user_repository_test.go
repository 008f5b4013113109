package repository_test

import (
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

func (s *RepositorySuite) TestUserCreateAndLookup() {
	user := s.createUser("kakao-1")
	s.NotZero(user.ID)

	byID, err := s.users.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("nick-kakao-1", byID.Nickname)
	s.Equal(entity.SocialKakao, byID.SocialType)

	bySocial, err := s.users.GetBySocial(s.ctx, "kakao-1", entity.SocialKakao)
	s.Require().NoError(err)
	s.Equal(user.ID, bySocial.ID)
}

func (s *RepositorySuite) TestUserSocialPairIsUnique() {
	s.createUser("same-id")

	duplicate, err := entity.NewUser(entity.SocialProfile{
		SocialID:   "same-id",
		SocialType: entity.SocialKakao,
	}, s.timeProvider)
	s.Require().NoError(err)

	err = s.users.Create(s.ctx, duplicate)
	s.ErrorIs(err, errs.ErrDuplicateUser)

	// same social id from another provider is a different identity
	google, err := entity.NewUser(entity.SocialProfile{
		SocialID:   "same-id",
		SocialType: entity.SocialGoogle,
	}, s.timeProvider)
	s.Require().NoError(err)
	s.NoError(s.users.Create(s.ctx, google))
}

func (s *RepositorySuite) TestUserNotFound() {
	_, err := s.users.GetByID(s.ctx, 999)
	s.ErrorIs(err, errs.ErrUserNotFound)

	_, err = s.users.GetBySocial(s.ctx, "missing", entity.SocialGoogle)
	s.ErrorIs(err, errs.ErrUserNotFound)
}

func (s *RepositorySuite) TestUserUpdate() {
	user := s.createUser("kakao-2")
	user.RefreshProfile(entity.SocialProfile{Nickname: "renamed", Email: "a@b.test"}, s.timeProvider)

	s.Require().NoError(s.users.Update(s.ctx, user))

	reloaded, err := s.users.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("renamed", reloaded.Nickname)
	s.Equal("a@b.test", reloaded.Email)

	missing := &entity.User{ID: 12345}
	s.ErrorIs(s.users.Update(s.ctx, missing), errs.ErrUserNotFound)
}
