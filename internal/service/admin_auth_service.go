package service

import (
	"context"
	"strings"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/repository/specification"
	"faq-chat-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type IAdminAuthService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type adminAuthService struct {
	uowFactory unitofwork.RepositoryFactory
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAdminAuthService(uowFactory unitofwork.RepositoryFactory, tokenTTL time.Duration, log logger.ILogger) IAdminAuthService {
	return &adminAuthService{
		uowFactory: uowFactory,
		tokenTTL:   tokenTTL,
		logger:     log,
	}
}

func (s *adminAuthService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if s.uowFactory == nil {
		return nil, ErrDatabaseUnavailable
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	admin, err := uow.AdminUserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AUTH", "Failed admin login", map[string]interface{}{"email": email})
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := serverutils.IssueToken(admin.Id.String(), serverutils.RoleAdmin, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := uow.AdminUserRepository().Update(ctx, admin); err != nil {
		s.logger.Warn("AUTH", "Failed to record admin login time", map[string]interface{}{"error": err.Error()})
	}

	return &dto.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
