package services

import (
	"fmt"
	"math"
	"strings"

	"villa-api/dto"
	"villa-api/errs"
)

const (
	opAdd     = "add"
	opReplace = "replace"
	opRemove  = "remove"
)

// DecodePatch convierte la lista de operaciones en un VillaPatch.
// Las operaciones se aplican en orden, así que si dos tocan el mismo campo
// gana la última. "remove" deja el campo en su valor cero.
func DecodePatch(ops []dto.PatchOperation) (dto.VillaPatch, error) {
	var patch dto.VillaPatch
	var fieldErrors []errs.FieldError

	for i, op := range ops {
		field := strings.ToLower(strings.TrimPrefix(op.Path, "/"))
		kind := strings.ToLower(op.Op)

		if kind != opAdd && kind != opReplace && kind != opRemove {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: field,
				Error: fmt.Sprintf("operation %d: unsupported op %q", i, op.Op),
			})
			continue
		}

		value := op.Value
		if kind == opRemove {
			value = nil
		}

		if err := setPatchField(&patch, field, value, kind == opRemove); err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: field,
				Error: fmt.Sprintf("operation %d: %s", i, err.Error()),
			})
		}
	}

	if len(fieldErrors) > 0 {
		return dto.VillaPatch{}, errs.Validation("invalid patch document", fieldErrors...)
	}
	return patch, nil
}

// ApplyPatch copia sobre target solo los campos presentes en el patch
func ApplyPatch(target *dto.UpdateVillaRequest, patch dto.VillaPatch) {
	if patch.ID != nil {
		target.ID = *patch.ID
	}
	if patch.Name != nil {
		target.Name = *patch.Name
	}
	if patch.Description != nil {
		target.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		target.ImageURL = *patch.ImageURL
	}
	if patch.Occupancy != nil {
		target.Occupancy = *patch.Occupancy
	}
	if patch.Rate != nil {
		target.Rate = *patch.Rate
	}
	if patch.AreaSqm != nil {
		target.AreaSqm = *patch.AreaSqm
	}
	if patch.Amenities != nil {
		target.Amenities = *patch.Amenities
	}
}

func setPatchField(patch *dto.VillaPatch, field string, value any, remove bool) error {
	switch field {
	case "id":
		n, err := toInt(value, remove)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("must not be negative")
		}
		id := uint(n)
		patch.ID = &id
	case "name":
		s, err := toString(value)
		if err != nil {
			return err
		}
		patch.Name = &s
	case "description":
		s, err := toString(value)
		if err != nil {
			return err
		}
		patch.Description = &s
	case "image_url":
		s, err := toString(value)
		if err != nil {
			return err
		}
		patch.ImageURL = &s
	case "occupancy":
		n, err := toInt(value, remove)
		if err != nil {
			return err
		}
		patch.Occupancy = &n
	case "rate":
		f, err := toFloat(value, remove)
		if err != nil {
			return err
		}
		patch.Rate = &f
	case "area_sqm":
		n, err := toInt(value, remove)
		if err != nil {
			return err
		}
		patch.AreaSqm = &n
	case "amenities":
		s, err := toString(value)
		if err != nil {
			return err
		}
		patch.Amenities = &s
	default:
		return fmt.Errorf("unknown path %q", "/"+field)
	}
	return nil
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("must be a string")
	}
}

func toFloat(value any, remove bool) (float64, error) {
	if value == nil && remove {
		return 0, nil
	}
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("must be a number")
	}
	return f, nil
}

func toInt(value any, remove bool) (int, error) {
	f, err := toFloat(value, remove)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("must be an integer")
	}
	return int(f), nil
}
