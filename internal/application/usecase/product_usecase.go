package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// ProductUseCase operaciones de acceso para Product. El catálogo es global
// como el de proveedores; las referencias a supplier/categoría se resuelven
// antes de escribir para devolver InvalidReference en vez de un error de FK.
type ProductUseCase struct {
	repo          repository.ProductRepository
	suppliers     repository.SupplierRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	suppliers repository.SupplierRepository,
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, suppliers: suppliers, categories: categories, subcategories: subcategories}
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, pr := range list {
		items = append(items, *toProductResponse(pr))
	}
	return items, nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	pr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(pr), nil
}

// Create crea un producto tras resolver sus referencias.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveRefs(ctx, in.SupplierID, in.CategoryID, in.SubcategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	pr := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SupplierID:    in.SupplierID,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Price:         in.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, pr); err != nil {
		return nil, err
	}
	return toProductResponse(pr), nil
}

// Update actualiza un producto; referencias nuevas se re-resuelven.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	pr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pr == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		pr.Name = *in.Name
	}
	if in.SupplierID != nil {
		pr.SupplierID = *in.SupplierID
	}
	if in.CategoryID != nil {
		pr.CategoryID = in.CategoryID
	}
	if in.SubcategoryID != nil {
		pr.SubcategoryID = in.SubcategoryID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.ErrValidation
		}
		pr.Price = *in.Price
	}
	if err := uc.resolveRefs(ctx, pr.SupplierID, pr.CategoryID, pr.SubcategoryID); err != nil {
		return err
	}
	pr.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, pr)
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ProductUseCase) resolveRefs(ctx context.Context, supplierID string, categoryID, subcategoryID *string) error {
	if uuid.Validate(supplierID) != nil {
		return domain.ErrInvalidReference
	}
	s, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrInvalidReference
	}
	if categoryID != nil {
		if uuid.Validate(*categoryID) != nil {
			return domain.ErrInvalidReference
		}
		c, err := uc.categories.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrInvalidReference
		}
	}
	if subcategoryID != nil {
		if uuid.Validate(*subcategoryID) != nil {
			return domain.ErrInvalidReference
		}
		sc, err := uc.subcategories.GetByID(ctx, *subcategoryID)
		if err != nil {
			return err
		}
		if sc == nil {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Price:         p.Price,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
