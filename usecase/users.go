package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/services"

	"github.com/google/uuid"
)

type UserService struct {
	UsersRepo *repository.UserRepo
}

func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := svc.UsersRepo.FindUserByUsername(user.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}

	user.UserID = uuid.New().String()
	user.Password = hashed
	user.CreatedAt = time.Now()

	if _, err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return err
	}
	return nil
}

func (svc *UserService) FindUserByUsername(username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(username)
}

func (svc *UserService) FindUser(userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(userID)
}

// ChangePassword verifies the old password before storing a hash of the new
// one.
func (svc *UserService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return errors.New("user not found")
	}

	ok, err := services.VerifyPassword(user.Password, oldPassword)
	if err != nil || !ok {
		return errors.New("incorrect current password")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := svc.UsersRepo.UpdateUserPassword(userID, hashed); err != nil {
		return err
	}
	return nil
}

func (svc *UserService) DeleteUser(userID string) error {
	count, err := svc.UsersRepo.DeleteUserByID(userID)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("user not found")
	}
	return nil
}
