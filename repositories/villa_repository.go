package repositories

import (
	"context"
	"errors"

	"villa-api/domain"
	"villa-api/errs"

	"gorm.io/gorm"
)

// ErrVillaNotFound se devuelve cuando ninguna villa coincide con la búsqueda
var ErrVillaNotFound = errors.New("villa not found")

// VillaRepository define las operaciones de acceso a datos de villas
type VillaRepository interface {
	GetAll(ctx context.Context) ([]domain.Villa, error)
	GetByID(ctx context.Context, id uint, tracked bool) (*domain.Villa, error)
	GetByName(ctx context.Context, name string) (*domain.Villa, error)
	Create(ctx context.Context, villa *domain.Villa) error
	Update(ctx context.Context, villa *domain.Villa) error
	Delete(ctx context.Context, villa *domain.Villa) error
}

// villaRepository es la implementación con GORM
type villaRepository struct {
	db *gorm.DB
}

// NewVillaRepository crea una nueva instancia del repositorio
func NewVillaRepository(db *gorm.DB) VillaRepository {
	return &villaRepository{db: db}
}

// GetAll hace SELECT * FROM villas
func (r *villaRepository) GetAll(ctx context.Context) ([]domain.Villa, error) {
	var villas []domain.Villa
	if err := r.db.WithContext(ctx).Find(&villas).Error; err != nil {
		return nil, errs.Wrap(err, "list villas failed")
	}
	return villas, nil
}

// GetByID busca una villa por su ID.
// GORM no tiene un contexto de seguimiento de cambios: el registro devuelto
// nunca queda "adjunto". Con tracked=false se lee en una sesión nueva, lo
// que marca la lectura como una foto para un patch-and-replace posterior.
func (r *villaRepository) GetByID(ctx context.Context, id uint, tracked bool) (*domain.Villa, error) {
	db := r.db.WithContext(ctx)
	if !tracked {
		db = db.Session(&gorm.Session{NewDB: true})
	}

	var villa domain.Villa
	if err := db.First(&villa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, errs.Wrap(err, "get villa failed")
	}
	return &villa, nil
}

// GetByName busca una villa por nombre, sin distinguir mayúsculas.
// Compara contra name_key, que se guarda ya normalizado.
func (r *villaRepository) GetByName(ctx context.Context, name string) (*domain.Villa, error) {
	var villa domain.Villa
	err := r.db.WithContext(ctx).
		Where("name_key = ?", domain.NameKey(name)).
		First(&villa).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, errs.Wrap(err, "get villa by name failed")
	}
	return &villa, nil
}

// Create inserta la villa. GORM completa ID, CreatedAt y UpdatedAt.
func (r *villaRepository) Create(ctx context.Context, villa *domain.Villa) error {
	if err := r.db.WithContext(ctx).Create(villa).Error; err != nil {
		return errs.Wrap(err, "create villa failed")
	}
	return nil
}

// Update guarda todos los campos de la villa (UPDATE completo por ID)
func (r *villaRepository) Update(ctx context.Context, villa *domain.Villa) error {
	if err := r.db.WithContext(ctx).Save(villa).Error; err != nil {
		return errs.Wrap(err, "update villa failed")
	}
	return nil
}

// Delete hace DELETE FROM villas WHERE id = ?
func (r *villaRepository) Delete(ctx context.Context, villa *domain.Villa) error {
	res := r.db.WithContext(ctx).Delete(&domain.Villa{}, villa.ID)
	if res.Error != nil {
		return errs.Wrap(res.Error, "delete villa failed")
	}
	if res.RowsAffected == 0 {
		return ErrVillaNotFound
	}
	return nil
}
