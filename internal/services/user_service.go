package services

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/auth"
	"trace-backend/internal/models"
	"trace-backend/internal/repositories"

	"github.com/pquerna/otp/totp"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWTManager: jwtManager}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, apperrors.Invalid("name", "name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Invalid("password", "must be at least 8 characters")
	}
	if req.Role != "" && req.Role != "employee" && req.Role != "admin" {
		return nil, apperrors.Invalid("role", "must be 'employee' or 'admin'")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}
	if existing != nil {
		return nil, apperrors.Conflict("user", "email", req.Email)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials (and the TOTP code when 2FA is enabled) and
// returns a signed token.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperrors.Invalid("email", "invalid credentials")
		}
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.Invalid("password", "invalid credentials")
	}
	if !user.IsActive {
		return nil, apperrors.Invalid("email", "account is suspended")
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, apperrors.Invalid("totp_code", "is required")
		}
		if !totp.Validate(req.TOTPCode, user.TOTPSecret) {
			return nil, apperrors.Invalid("totp_code", "invalid code")
		}
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		if req.Role != "employee" && req.Role != "admin" {
			return nil, apperrors.Invalid("role", "must be 'employee' or 'admin'")
		}
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, apperrors.Invalid("password", "must be at least 8 characters")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
