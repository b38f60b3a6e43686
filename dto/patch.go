package dto

// PatchOperation es una instrucción de un PATCH, con el formato de JSON Patch:
//
//	{"op": "replace", "path": "/name", "value": "Villa Sol"}
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// VillaPatch es la versión con campos opcionales de UpdateVillaRequest.
// Un campo nil no se toca al aplicar el patch.
type VillaPatch struct {
	ID          *uint
	Name        *string
	Description *string
	ImageURL    *string
	Occupancy   *int
	Rate        *float64
	AreaSqm     *int
	Amenities   *string
}
