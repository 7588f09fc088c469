package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// CategoryUseCase operaciones de acceso para Category.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías de la empresa del principal.
func (uc *CategoryUseCase) List(ctx context.Context, p access.Principal) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindCategory))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría; de otro tenant es Forbidden.
func (uc *CategoryUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.CategoryResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindCategory, c.CompanyID, "") {
		return nil, domain.ErrForbidden
	}
	return toCategoryResponse(c), nil
}

// Create crea una categoría en la empresa del principal (company forzada).
func (uc *CategoryUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.CompanyID != "" && in.CompanyID != p.CompanyID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	c := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: p.CompanyID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Update actualiza una categoría tras verificar la pertenencia del registro.
func (uc *CategoryUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateCategoryRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !access.Allows(p, access.KindCategory, c.CompanyID, "") {
		return domain.ErrForbidden
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	c.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, c)
}

// Delete elimina una categoría con el scope embebido en la consulta.
func (uc *CategoryUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindCategory))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
