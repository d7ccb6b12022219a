package handler

import (
	"github.com/dpramesti/hris-directory/internal/config"
	"github.com/dpramesti/hris-directory/internal/handler/http"
	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
