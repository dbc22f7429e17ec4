package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/pkg/logger"
	"giftcard-register-be/internal/repository/specification"
	"giftcard-register-be/internal/repository/unitofwork"
	"giftcard-register-be/pkg/audit"
)

type IAuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	recorder   audit.IRecorder
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, recorder audit.IRecorder, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("auth_service", "failed login attempt", map[string]interface{}{
			"email": req.Email,
		})
		return nil, errors.New("invalid credentials")
	}

	accessTokenExpiry := time.Hour * 24

	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"username": user.FullName,
		"role":     string(user.Role),
		"exp":      time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	actor := entity.Actor{UserId: user.Id, Username: user.FullName, Role: user.Role}
	s.recorder.Record(ctx, actor, entity.ActionUserLogin, entity.TargetTypeUser, user.Id.String(), map[string]interface{}{
		"email": user.Email,
	})

	return &dto.LoginResponse{
		Token:    signedToken,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}
