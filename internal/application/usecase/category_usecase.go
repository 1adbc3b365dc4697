package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	auditor     *audit.Recorder
}

func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository, auditor *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, auditor: auditor}
}

// Create crea una categoría. El nombre es único (case-sensitive).
func (uc *CategoryUseCase) Create(ctx context.Context, userID, name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.record(ctx, userID, entity.ActionCreate, category.ID,
		fmt.Sprintf("Categoría %q creada", name))
	return category, nil
}

func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}

// Update renombra o redescribe una categoría. Cadena vacía = sin cambio.
func (uc *CategoryUseCase) Update(ctx context.Context, userID, id, name, description string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if name != "" && name != category.Name {
		existing, err := uc.repo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = name
	}
	if description != "" {
		category.Description = description
	}
	category.UpdatedAt = time.Now()

	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	uc.record(ctx, userID, entity.ActionUpdate, id,
		fmt.Sprintf("Categoría %q actualizada", category.Name))
	return category, nil
}

// Delete borra una categoría solo si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, userID, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.record(ctx, userID, entity.ActionDelete, id,
		fmt.Sprintf("Categoría %q eliminada", category.Name))
	return nil
}

func (uc *CategoryUseCase) record(ctx context.Context, userID, action, entityID, description string) {
	if uc.auditor == nil {
		return
	}
	uc.auditor.Record(ctx, audit.Entry{
		UserID:      userID,
		Action:      action,
		Entity:      entity.EntityCategory,
		EntityID:    entityID,
		Description: description,
	})
}
