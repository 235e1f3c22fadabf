package usecase

import (
	"context"
	"fmt"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Avatar  *string `json:"avatar"`
}

type UserUsecase interface {
	Get(ctx context.Context, userId string) (entity.User, error)
	List(ctx context.Context, role string) ([]entity.User, error)
	UpdateProfile(ctx context.Context, userId string, req UpdateProfileRequest) (entity.User, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) Get(ctx context.Context, userId string) (entity.User, error) {
	if userId == "" {
		return entity.User{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	return u.userRepo.Get(ctx, userId)
}

// List returns the user directory, optionally narrowed to one role (the
// clients/designers listing pages).
func (u *userUsecase) List(ctx context.Context, role string) ([]entity.User, error) {
	if role != "" && !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return u.userRepo.ListByRole(ctx, role)
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userId string, req UpdateProfileRequest) (entity.User, error) {
	if userId == "" {
		return entity.User{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	user, err := u.userRepo.Get(ctx, userId)
	if err != nil {
		return entity.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return entity.User{}, err
	}
	user.Password = ""
	return user, nil
}
