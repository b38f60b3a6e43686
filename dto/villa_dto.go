package dto

// CreateVillaRequest es el body de POST /villa.
// No lleva id ni fechas: los asigna la base de datos.
type CreateVillaRequest struct {
	Name        string  `json:"name" binding:"required,max=30"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Occupancy   int     `json:"occupancy" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"required,gt=0"`
	AreaSqm     int     `json:"area_sqm" binding:"gte=0"`
	Amenities   string  `json:"amenities"`
}

// UpdateVillaRequest es el body de PUT /villa/:id.
// Reemplaza el registro completo: los campos que no se mandan quedan en su valor cero.
type UpdateVillaRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required,max=30"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Occupancy   int     `json:"occupancy" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"required,gt=0"`
	AreaSqm     int     `json:"area_sqm" binding:"gte=0"`
	Amenities   string  `json:"amenities"`
}

// VillaResponse es lo que se le devuelve al cliente (sin fechas)
type VillaResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Occupancy   int     `json:"occupancy"`
	Rate        float64 `json:"rate"`
	AreaSqm     int     `json:"area_sqm"`
	Amenities   string  `json:"amenities"`
}

// ErrorResponse representa una respuesta de error
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError es el detalle de un campo inválido
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}
