package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/grocerybill/internal/auth"
	"github.com/mmynk/grocerybill/internal/models"
)

// AuthService implements clerk registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		validate:      newValidator(),
		logger:        logger,
	}
}

// Register creates a new clerk account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	s.logger.Info("Register request", "name", req.Msg.Name)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	clerk, err := s.authenticator.Register(ctx, req.Msg.Name, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "name", req.Msg.Name, "error", err)
		switch {
		case errors.Is(err, auth.ErrClerkExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(clerk)
	if err != nil {
		s.logger.Error("Failed to generate token", "clerk_id", clerk.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Clerk registered", "clerk_id", clerk.ID, "name", clerk.Name)
	return connect.NewResponse(&RegisterResponse{Clerk: clerkToMessage(clerk), Token: token}), nil
}

// Login authenticates a clerk and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	s.logger.Info("Login request", "name", req.Msg.Name)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	clerk, err := s.authenticator.Authenticate(ctx, req.Msg.Name, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "name", req.Msg.Name, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(clerk)
	if err != nil {
		s.logger.Error("Failed to generate token", "clerk_id", clerk.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Clerk logged in", "clerk_id", clerk.ID)
	return connect.NewResponse(&LoginResponse{Clerk: clerkToMessage(clerk), Token: token}), nil
}

func clerkToMessage(c *models.Clerk) Clerk {
	return Clerk{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}
