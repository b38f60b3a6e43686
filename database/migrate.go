package database

import (
	"context"
	"fmt"

	"villa-api/domain"

	"gorm.io/gorm"
)

// SeedVillas son las villas que se cargan cuando la tabla está vacía
var SeedVillas = []domain.Villa{
	{
		ID:          1,
		Name:        "Villa Real",
		Description: "Detalle de la Villa...",
		Occupancy:   5,
		Rate:        200.0,
		AreaSqm:     50,
	},
	{
		ID:          2,
		Name:        "Premium Vista a la Piscina",
		Description: "Detalle de la Villa...",
		Occupancy:   4,
		Rate:        150.0,
		AreaSqm:     40,
	},
}

// Migrate crea o actualiza la tabla villas y completa name_key en las filas
// que existían antes de que se agregara la columna
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Villa{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var pending []domain.Villa
	if err := db.Where("name_key = '' OR name_key IS NULL").Find(&pending).Error; err != nil {
		return fmt.Errorf("failed to read villas without name_key: %w", err)
	}
	for i := range pending {
		key := domain.NameKey(pending[i].Name)
		err := db.Model(&domain.Villa{}).Where("id = ?", pending[i].ID).UpdateColumn("name_key", key).Error
		if err != nil {
			return fmt.Errorf("failed to backfill name_key for villa %d: %w", pending[i].ID, err)
		}
	}
	return nil
}

// Seed inserta las villas iniciales solo si la tabla está vacía.
// Devuelve cuántas villas insertó.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Villa{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count villas: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	villas := make([]domain.Villa, len(SeedVillas))
	copy(villas, SeedVillas)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&villas).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed villas: %w", err)
	}

	// En PostgreSQL la secuencia no avanza si el id se manda explícito
	if db.Dialector.Name() == "postgres" {
		err := db.WithContext(ctx).
			Exec("SELECT setval(pg_get_serial_sequence('villas', 'id'), (SELECT MAX(id) FROM villas))").Error
		if err != nil {
			return 0, fmt.Errorf("failed to reset villas sequence: %w", err)
		}
	}

	return len(villas), nil
}
