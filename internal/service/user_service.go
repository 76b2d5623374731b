package service

import (
	"context"

	"atrium/internal/models"
	"atrium/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type DeleteUserInput struct {
	CallerID uint
	TargetID uint
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// SetAdmin toggles the admin capability flag on the target account.
func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account and cascades to everything it owns or
// authored. Callers may delete themselves; deleting someone else requires the
// admin route, which performs its own gate before calling this.
func (s *UserService) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	if _, err := s.userRepo.GetByID(ctx, in.TargetID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, in.TargetID)
}
