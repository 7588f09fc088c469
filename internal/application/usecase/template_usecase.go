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

// TemplateUseCase operaciones de acceso para Template. La creación es en
// lote: una plantilla por cada location solicitada, todas dentro de una misma
// transacción (o entran todas o ninguna).
type TemplateUseCase struct {
	repo      repository.TemplateRepository
	locations repository.LocationRepository
	suppliers repository.SupplierRepository
	tx        TemplateTxRunner
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(
	repo repository.TemplateRepository,
	locations repository.LocationRepository,
	suppliers repository.SupplierRepository,
	tx TemplateTxRunner,
) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, locations: locations, suppliers: suppliers, tx: tx}
}

// List devuelve las plantillas visibles para el principal.
func (uc *TemplateUseCase) List(ctx context.Context, p access.Principal) ([]dto.TemplateResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindTemplate))
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return items, nil
}

// GetByID obtiene una plantilla; fuera de alcance es Forbidden.
func (uc *TemplateUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.TemplateResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindTemplate, t.CompanyID, t.LocationID) {
		return nil, domain.ErrForbidden
	}
	return toTemplateResponse(t), nil
}

// Create crea las plantillas del lote, una por location. Todas las locations
// se resuelven antes de abrir la transacción: si alguna es ajena o inexistente
// no se crea ninguna.
func (uc *TemplateUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateTemplateRequest) ([]dto.TemplateResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}
	for _, locID := range in.LocationIDs {
		if err := uc.resolveLocation(ctx, p, locID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	created := make([]*entity.Template, 0, len(in.LocationIDs))
	for _, locID := range in.LocationIDs {
		created = append(created, &entity.Template{
			ID:         uuid.New().String(),
			CompanyID:  p.CompanyID,
			LocationID: locID,
			SupplierID: in.SupplierID,
			OrderDays:  in.OrderDays,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	err := uc.tx.RunTemplates(ctx, func(templates repository.TemplateRepository) error {
		for _, t := range created {
			if err := templates.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(created))
	for _, t := range created {
		items = append(items, *toTemplateResponse(t))
	}
	return items, nil
}

// Update actualiza una plantilla; cambiar de location re-valida la pertenencia.
func (uc *TemplateUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateTemplateRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if !access.Allows(p, access.KindTemplate, t.CompanyID, t.LocationID) {
		return domain.ErrForbidden
	}
	if in.LocationID != nil {
		if err := uc.resolveLocation(ctx, p, *in.LocationID); err != nil {
			return err
		}
		t.LocationID = *in.LocationID
	}
	if in.SupplierID != nil {
		if err := uc.resolveSupplier(ctx, *in.SupplierID); err != nil {
			return err
		}
		t.SupplierID = *in.SupplierID
	}
	if in.OrderDays != nil {
		t.OrderDays = in.OrderDays
	}
	t.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, t)
}

// Delete elimina una plantilla con el scope embebido en la consulta.
func (uc *TemplateUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindTemplate))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *TemplateUseCase) resolveLocation(ctx context.Context, p access.Principal, locationID string) error {
	if uuid.Validate(locationID) != nil {
		return domain.ErrInvalidReference
	}
	loc, err := uc.locations.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil || loc.CompanyID != p.CompanyID {
		return domain.ErrInvalidReference
	}
	if p.Role == access.RoleUser && !p.HasLocation(locationID) {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *TemplateUseCase) resolveSupplier(ctx context.Context, supplierID string) error {
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
	return nil
}

func toTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:         t.ID,
		CompanyID:  t.CompanyID,
		LocationID: t.LocationID,
		SupplierID: t.SupplierID,
		OrderDays:  t.OrderDays,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
