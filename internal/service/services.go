package service

import (
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/models"
)

type Services struct {
	PostService    PostService
	UserService    UserService
	FaultService   FaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PostService:    NewPostValidationService().Wrap(NewPostService(storages.PostRepository, logger)),
		UserService:    NewUserService(storages.UserRepository, logger),
		FaultService:   NewFaultService(logger),
		AppInfoService: appInfoService,
	}, nil
}
