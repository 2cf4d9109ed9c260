package services

import (
	"context"
	"fmt"

	"github.com/you/runmate/domain"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ProfileUpdate carries the patchable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name      *string
	Email     *string
	AvatarURL *string
	Bio       *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
