package setup

import (
	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/handler"
	"github.com/threadhub-dev/threadhub/internal/jwt"
	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/service"
	"github.com/threadhub-dev/threadhub/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.Service
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL)

	thread := service.NewThread(storage)
	auth := service.NewAuth(storage, jwtService)

	h := handler.New(thread, auth, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
