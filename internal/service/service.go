package service

import (
	"go.uber.org/zap"

	"postboard/internal/repository"
)

type Service struct {
	User UserService
	Post PostService
}

func NewService(rep *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		User: NewUserService(rep.User, rep.Post, log),
		Post: NewPostService(rep.Post, rep.Tx, log),
	}
}
