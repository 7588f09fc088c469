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

// SubcategoryUseCase operaciones de acceso para Subcategory. La categoría
// padre debe existir y pertenecer a la misma empresa del principal.
type SubcategoryUseCase struct {
	repo       repository.SubcategoryRepository
	categories repository.CategoryRepository
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, categories repository.CategoryRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, categories: categories}
}

// List devuelve las subcategorías de la empresa del principal.
func (uc *SubcategoryUseCase) List(ctx context.Context, p access.Principal) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindSubcategory))
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// GetByID obtiene una subcategoría; de otro tenant es Forbidden.
func (uc *SubcategoryUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.SubcategoryResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindSubcategory, s.CompanyID, "") {
		return nil, domain.ErrForbidden
	}
	return toSubcategoryResponse(s), nil
}

// Create crea una subcategoría. La categoría referenciada debe existir en la
// empresa del principal; una categoría ajena equivale a una inexistente.
func (uc *SubcategoryUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.CompanyID != "" && in.CompanyID != p.CompanyID {
		return nil, domain.ErrForbidden
	}
	if err := uc.resolveCategory(ctx, p, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Subcategory{
		ID:         uuid.New().String(),
		CompanyID:  p.CompanyID,
		CategoryID: in.CategoryID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(s), nil
}

// Update actualiza una subcategoría; cambiar de categoría re-valida la referencia.
func (uc *SubcategoryUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateSubcategoryRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if !access.Allows(p, access.KindSubcategory, s.CompanyID, "") {
		return domain.ErrForbidden
	}
	if in.CategoryID != nil {
		if err := uc.resolveCategory(ctx, p, *in.CategoryID); err != nil {
			return err
		}
		s.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	s.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, s)
}

// Delete elimina una subcategoría con el scope embebido en la consulta.
func (uc *SubcategoryUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindSubcategory))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *SubcategoryUseCase) resolveCategory(ctx context.Context, p access.Principal, categoryID string) error {
	if uuid.Validate(categoryID) != nil {
		return domain.ErrInvalidReference
	}
	c, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil || c.CompanyID != p.CompanyID {
		return domain.ErrInvalidReference
	}
	return nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:         s.ID,
		CompanyID:  s.CompanyID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
