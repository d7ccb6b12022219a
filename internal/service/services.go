package service

import (
	"github.com/dpramesti/hris-directory/internal/config"
	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/store"
)

type Services struct {
	AuthService      AuthService
	DirectoryService DirectoryService
	StructureService StructureService
}

func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.Users, cfg, logger),
		DirectoryService: NewDirectoryService(repos.Employees, logger),
		StructureService: NewStructureService(repos.Employees, logger),
	}
}
