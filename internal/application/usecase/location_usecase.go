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

// LocationUseCase operaciones de acceso para Location. La company del registro
// se fuerza siempre desde el principal, nunca desde el payload del cliente.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// List devuelve las sedes visibles: todas las de la empresa para Admin, solo
// las del conjunto asignado para User.
func (uc *LocationUseCase) List(ctx context.Context, p access.Principal) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindLocation))
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// GetByID obtiene una sede; fuera de alcance es Forbidden, no NotFound.
func (uc *LocationUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.LocationResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindLocation, l.CompanyID, l.ID) {
		return nil, domain.ErrForbidden
	}
	return toLocationResponse(l), nil
}

// Create crea una sede en la empresa del principal. Si el cliente envía una
// company distinta se rechaza; en ningún caso se confía en ese campo.
func (uc *LocationUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.CompanyID != "" && in.CompanyID != p.CompanyID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	l := &entity.Location{
		ID:        uuid.New().String(),
		CompanyID: p.CompanyID, // forzado desde el token
		Name:      in.Name,
		Phone:     in.Phone,
		Fax:       in.Fax,
		Email:     in.Email,
		Address:   toAddress(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// Update actualiza una sede tras verificar la pertenencia del registro actual.
func (uc *LocationUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateLocationRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if !access.Allows(p, access.KindLocation, l.CompanyID, l.ID) {
		return domain.ErrForbidden
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Phone != nil {
		l.Phone = *in.Phone
	}
	if in.Fax != nil {
		l.Fax = *in.Fax
	}
	if in.Email != nil {
		l.Email = *in.Email
	}
	if in.Address != nil {
		l.Address = toAddress(*in.Address)
	}
	l.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, l)
}

// Delete elimina una sede con el scope embebido en la consulta.
func (uc *LocationUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindLocation))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func toAddress(a dto.AddressPayload) entity.Address {
	return entity.Address{
		HouseNumber: a.HouseNumber,
		Street:      a.Street,
		Town:        a.Town,
		PostCode:    a.PostCode,
		County:      a.County,
		Country:     a.Country,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Name:      l.Name,
		Phone:     l.Phone,
		Fax:       l.Fax,
		Email:     l.Email,
		Address: dto.AddressPayload{
			HouseNumber: l.Address.HouseNumber,
			Street:      l.Address.Street,
			Town:        l.Address.Town,
			PostCode:    l.Address.PostCode,
			County:      l.Address.County,
			Country:     l.Address.Country,
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
