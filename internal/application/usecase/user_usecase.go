package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// UserUseCase operaciones de acceso para User. El password llega en texto en
// el DTO y se hashea exactamente una vez antes de persistir, en este nivel:
// la capa de persistencia nunca ve un password plano ni re-hashea.
type UserUseCase struct {
	repo      repository.UserRepository
	locations repository.LocationRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, locations repository.LocationRepository) *UserUseCase {
	return &UserUseCase{repo: repo, locations: locations}
}

// List devuelve los usuarios de la empresa del principal.
func (uc *UserUseCase) List(ctx context.Context, p access.Principal) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindUser))
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario; de otro tenant es Forbidden.
func (uc *UserUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.UserResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindUser, u.CompanyID, "") {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(u), nil
}

// Me devuelve el usuario autenticado (identidad del token).
func (uc *UserUseCase) Me(ctx context.Context, p access.Principal) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(u), nil
}

// Create crea un usuario en la empresa del principal. Las locations asignadas
// deben pertenecer a la misma empresa.
func (uc *UserUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.CompanyID != "" && in.CompanyID != p.CompanyID {
		return nil, domain.ErrForbidden
	}
	if err := uc.resolveLocations(ctx, p, in.LocationIDs); err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:          uuid.New().String(),
		CompanyID:   p.CompanyID,
		Name:        in.Name,
		Email:       in.Email,
		Role:        in.Role,
		LocationIDs: in.LocationIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := auth.PrepareWrite(u, in.Password); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update actualiza un usuario. Password presente implica un único re-hash.
func (uc *UserUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateUserRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if !access.Allows(p, access.KindUser, u.CompanyID, "") {
		return domain.ErrForbidden
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.LocationIDs != nil {
		if err := uc.resolveLocations(ctx, p, in.LocationIDs); err != nil {
			return err
		}
		u.LocationIDs = in.LocationIDs
	}
	var plaintext string
	if in.Password != nil {
		plaintext = *in.Password
	}
	if err := auth.PrepareWrite(u, plaintext); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, u)
}

// Delete elimina un usuario con el scope embebido en la consulta.
func (uc *UserUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindUser))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

// resolveLocations exige que cada location asignada exista y sea de la
// empresa del principal.
func (uc *UserUseCase) resolveLocations(ctx context.Context, p access.Principal, ids []string) error {
	for _, id := range ids {
		if uuid.Validate(id) != nil {
			return domain.ErrInvalidReference
		}
		loc, err := uc.locations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if loc == nil || loc.CompanyID != p.CompanyID {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	locs := u.LocationIDs
	if locs == nil {
		locs = []string{}
	}
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		LocationIDs: locs,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
