package handlers_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "postboard/internal/handler"
	"postboard/internal/models"
	"postboard/internal/repository"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetUserPosts(ctx context.Context, userID int64) (*models.UserPosts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPosts), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) GetPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type stubHealth struct {
	err    error
	tables int
}

func (s stubHealth) HealthCheck() error {
	return s.err
}

func (s stubHealth) CountTables(ctx context.Context) (int, error) {
	return s.tables, s.err
}

var errStore = errors.New("database is locked")

func newTestHandlers(userService *MockUserService, postService *MockPostService) *handlers.Handlers {
	return &handlers.Handlers{
		UserService: userService,
		PostService: postService,
		DB:          stubHealth{tables: 2},
		Validate:    handlers.NewValidator(),
		Log:         zap.NewNop(),
	}
}
