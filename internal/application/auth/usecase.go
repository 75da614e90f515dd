// Package auth implementa login y alta de usuarios con bcrypt y JWT.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
	"github.com/jhoicas/tesoreria-api/pkg/config"
	"github.com/jhoicas/tesoreria-api/pkg/jwt"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	repo   repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwtCfg: jwtCfg}
}

// Login autentica por username y contraseña y emite un JWT.
// Credenciales incorrectas y usuario inexistente devuelven el mismo error.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Name, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Name:      u.Name,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
	}, nil
}

// Register crea un usuario nuevo con la contraseña hasheada.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if len(in.Username) < 3 || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleTesorero
	}
	if role != entity.RoleAdmin && role != entity.RoleTesorero {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
