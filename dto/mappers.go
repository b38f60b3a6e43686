package dto

import "villa-api/domain"

// Funciones de mapeo entre el modelo y los DTOs.
// Son copias campo a campo, sin efectos secundarios.

// ToVillaResponse convierte el modelo en el DTO de lectura
func ToVillaResponse(villa domain.Villa) VillaResponse {
	return VillaResponse{
		ID:          villa.ID,
		Name:        villa.Name,
		Description: villa.Description,
		ImageURL:    villa.ImageURL,
		Occupancy:   villa.Occupancy,
		Rate:        villa.Rate,
		AreaSqm:     villa.AreaSqm,
		Amenities:   villa.Amenities,
	}
}

// ToVillaResponseList convierte una lista de modelos.
// Nunca devuelve nil, así el JSON es [] cuando no hay villas.
func ToVillaResponseList(villas []domain.Villa) []VillaResponse {
	out := make([]VillaResponse, 0, len(villas))
	for _, villa := range villas {
		out = append(out, ToVillaResponse(villa))
	}
	return out
}

// CreateRequestToVilla arma el modelo para insertar. El id lo asigna la base de datos.
func CreateRequestToVilla(req CreateVillaRequest) domain.Villa {
	return domain.Villa{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Occupancy:   req.Occupancy,
		Rate:        req.Rate,
		AreaSqm:     req.AreaSqm,
		Amenities:   req.Amenities,
	}
}

// UpdateRequestToVilla arma el modelo completo para un reemplazo
func UpdateRequestToVilla(req UpdateVillaRequest) domain.Villa {
	return domain.Villa{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Occupancy:   req.Occupancy,
		Rate:        req.Rate,
		AreaSqm:     req.AreaSqm,
		Amenities:   req.Amenities,
	}
}

// VillaToUpdateRequest es el paso previo a aplicar un PATCH
func VillaToUpdateRequest(villa domain.Villa) UpdateVillaRequest {
	return UpdateVillaRequest{
		ID:          villa.ID,
		Name:        villa.Name,
		Description: villa.Description,
		ImageURL:    villa.ImageURL,
		Occupancy:   villa.Occupancy,
		Rate:        villa.Rate,
		AreaSqm:     villa.AreaSqm,
		Amenities:   villa.Amenities,
	}
}
