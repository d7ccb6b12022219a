package http

import (
	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
