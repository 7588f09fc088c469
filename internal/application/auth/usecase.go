package auth

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
	"github.com/jhoicas/ordena-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el repositorio de
// usuarios y emisión del token con identidad + alcance.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y genera el JWT. Email inexistente y password
// incorrecto devuelven el mismo error: no se revela cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredential
	}
	if !VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredential
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, user.LocationIDs,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
