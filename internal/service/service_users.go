package service

import (
	"context"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.Get(ctx, id)
}
