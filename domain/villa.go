package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Villa representa una propiedad de alquiler guardada en la base de datos
type Villa struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	NameKey     string    `gorm:"column:name_key;type:varchar(100);index" json:"-"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`
	Occupancy   int       `gorm:"not null;default:0" json:"occupancy"`
	Rate        float64   `gorm:"not null" json:"rate"`
	AreaSqm     int       `gorm:"column:area_sqm;not null;default:0" json:"area_sqm"`
	Amenities   string    `gorm:"type:text" json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName especifica el nombre de la tabla
func (Villa) TableName() string {
	return "villas"
}

// NameKey normaliza un nombre para compararlo sin distinguir mayúsculas.
// Se hace en Go porque LOWER() de SQLite solo convierte ASCII.
func NameKey(name string) string {
	return strings.ToLower(name)
}

// BeforeSave mantiene name_key al día en cada Create y Save
func (v *Villa) BeforeSave(_ *gorm.DB) error {
	v.NameKey = NameKey(v.Name)
	return nil
}
