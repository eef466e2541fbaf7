package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"smartadmin_backend/internal/auth"
	"smartadmin_backend/internal/logger"
	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

const blacklistPrefix = "blacklist:"

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	InitAdmin(req *dto.InitAdminRequest) (*dto.AdminDTO, error)
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type authService struct {
	adminRepo  repositories.AdminRepository
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthService(adminRepo repositories.AdminRepository, jwtManager *auth.JWTManager, rdb *redis.Client) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		redis:      rdb,
	}
}

// Login проверяет учётные данные и выдаёт токен.
// Неизвестный email и неверный пароль дают одинаковый ответ,
// чтобы не раскрывать существование аккаунта.
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := s.jwtManager.Generate(admin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(admin.ID, now); err != nil {
		// Вход состоялся, метка last_login_at не критична
		logger.WithError(err).Warn("failed to update last login", "admin_id", admin.ID)
	}

	return &dto.LoginResponse{
		Token: token,
		Admin: dto.NewAdminDTO(admin),
	}, nil
}

// Logout заносит токен в чёрный список до истечения его срока действия
func (s *authService) Logout(ctx context.Context, token string) error {
	expiry, err := s.jwtManager.Expiry(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	ttl := time.Until(expiry)
	if ttl <= 0 {
		// Токен уже истёк, блокировать нечего
		return nil
	}

	if err := s.redis.Set(ctx, blacklistPrefix+token, "1", ttl).Err(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// IsBlacklisted проверяет, был ли токен отозван через logout
func (s *authService) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.redis.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InitAdmin создаёт первого администратора; отклоняется, если хоть один уже есть
func (s *authService) InitAdmin(req *dto.InitAdminRequest) (*dto.AdminDTO, error) {
	existing, err := s.adminRepo.FindAny()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.StorageError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrAdminExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.AdminRoleSuper,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, apperrors.StorageError(err)
	}

	result := dto.NewAdminDTO(admin)
	return &result, nil
}
