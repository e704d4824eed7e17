package services

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
	"safari/internal/config"
	"safari/internal/models/request_models"
	"safari/internal/models/response_models"
	"safari/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.TokenResponse, error)
}

type AdminService struct {
	username     string
	passwordHash string
	tokens       *utils.TokenManager
	log          *zap.Logger
}

func NewAdminService(cfg config.Config, tokens *utils.TokenManager, log *zap.Logger) AdminServiceInterface {
	return &AdminService{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		tokens:       tokens,
		log:          log,
	}
}

func (s *AdminService) Login(ctx context.Context, req request_models.AdminLoginRequest) (*response_models.TokenResponse, error) {
	if s.passwordHash == "" || !s.tokens.Enabled() {
		return nil, utils.ErrAdminNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// The hash check runs for unknown usernames too.
	passErr := utils.ComparePasswords(s.passwordHash, req.Password)
	if !userOK || passErr != nil {
		s.log.Warn("admin login rejected", zap.String("username", req.Username))
		return nil, utils.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.CreateToken(s.username, utils.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &response_models.TokenResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
