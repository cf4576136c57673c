package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/cache/redis"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/config"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/dbs/postgres"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/notify"
	cachedocsrepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/cache/docs"
	cachesessionrepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/cache/session"
	academicrepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/db/academic"
	documentrepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/db/document"
	profilerepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/db/profile"
	userrepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/db/user"
	filerepo "github.com/RichyP48/Inscription-en-ligne-bf/internal/repositories/storage/file"
	academicservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/academic"
	applicationservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/application"
	authservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/auth"
	documentservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/document"
	profileservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/profile"
	userservice "github.com/RichyP48/Inscription-en-ligne-bf/internal/services/user"
)

type App struct {
	AuthService        *authservice.AuthService
	UserService        *userservice.UserService
	DocumentService    *documentservice.DocumentService
	AcademicService    *academicservice.AcademicService
	ProfileService     *profileservice.ProfileService
	ApplicationService *applicationservice.ApplicationService
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cfg.Cache.Addr, Password: cfg.Cache.Password, DB: cfg.Cache.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	fileStorage := filerepo.NewRepository(cfg.FileStorage.Path)

	if err := fileStorage.Init(); err != nil {
		log.Error("failed to init file storage", "err", err)
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}

	var notifier notify.Notifier = notify.NewNoop()
	if cfg.SMTP.Enabled {
		notifier = notify.NewSMTP(log, cfg.SMTP.Addr, cfg.SMTP.From)
	}

	userRepo := userrepo.NewRepository(db)

	sessionCacheRepo := cachesessionrepo.New(cache, cfg.Cache.SessionTTL)

	documentCacheRepo := cachedocsrepo.New(cache, cfg.Cache.DocumentsTTL)

	userService := userservice.New(log, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, sessionCacheRepo)

	docRepo := documentrepo.NewRepository(db)

	documentService := documentservice.New(log, docRepo, documentCacheRepo, fileStorage, userService, notifier)

	academicRepo := academicrepo.NewRepository(db)

	academicService := academicservice.New(log, academicRepo)

	profileRepo := profilerepo.NewRepository(db)

	profileService := profileservice.New(log, profileRepo)

	applicationService := applicationservice.New(log, userRepo, notifier)

	if err := userService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error("failed to ensure admin account", "err", err)
		return nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	return &App{
		AuthService:        authService,
		UserService:        userService,
		DocumentService:    documentService,
		AcademicService:    academicService,
		ProfileService:     profileService,
		ApplicationService: applicationService,
	}, nil
}
