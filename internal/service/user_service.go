package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserPosts(ctx context.Context, userID int64) (*models.UserPosts, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
		log:      log,
	}
}

// CreateUser is only reachable from the seed tool; users are not created over HTTP.
func (s *userService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.MobileNumber)
	if name == "" || mobile == "" {
		return nil, fmt.Errorf("name and mobile number are required")
	}

	user := &models.User{
		Name:         name,
		MobileNumber: mobile,
		Address:      req.Address,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.Int64("user_id", user.ID))
	return user, nil
}

// GetUsers reports an empty table as ErrNoUsers.
func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, models.ErrNoUsers
	}

	return users, nil
}

// GetUserPosts returns the user summary and its posts. A user without posts
// is not an error: Posts is empty.
func (s *userService) GetUserPosts(ctx context.Context, userID int64) (*models.UserPosts, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserPosts{
		User:  user.Summary(),
		Posts: posts,
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.log.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}
