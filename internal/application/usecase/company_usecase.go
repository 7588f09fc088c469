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

// CompanyUseCase operaciones de acceso para Company. Un principal solo ve y
// toca su propia empresa; crear una empresa nueva arranca un tenant limpio.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve las empresas visibles para el principal (la suya).
func (uc *CompanyUseCase) List(ctx context.Context, p access.Principal) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindCompany))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// GetByID obtiene una empresa; fuera del tenant del principal es Forbidden.
func (uc *CompanyUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.CompanyResponse, error) {
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
	if !access.Allows(p, access.KindCompany, c.ID, "") {
		return nil, domain.ErrForbidden
	}
	return toCompanyResponse(c), nil
}

// Create crea una empresa nueva (tenant nuevo, sin pertenencia previa).
func (uc *CompanyUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// Update actualiza la empresa del principal. Devuelve solo el acuse: el
// llamador debe re-leer para ver el nuevo estado.
func (uc *CompanyUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateCompanyRequest) error {
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
	if !access.Allows(p, access.KindCompany, c.ID, "") {
		return domain.ErrForbidden
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	c.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, c)
}

// Delete elimina la empresa. El scope viaja en el DELETE: intentar borrar otro
// tenant devuelve NotFound, no Forbidden (conflación deliberada del contrato).
func (uc *CompanyUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindCompany))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
