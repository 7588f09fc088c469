package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// TemplateRepository define el puerto de persistencia para Template (DIP).
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	Update(ctx context.Context, template *entity.Template) error
	List(ctx context.Context, scope access.Scope) ([]*entity.Template, error)
	Delete(ctx context.Context, id string, scope access.Scope) (bool, error)
}
