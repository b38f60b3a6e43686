package services

import (
	"context"
	"errors"

	"villa-api/domain"
	"villa-api/dto"
	"villa-api/errs"
	"villa-api/events"
	"villa-api/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// VillaService define la interfaz del servicio
type VillaService interface {
	GetVillas(ctx context.Context) ([]dto.VillaResponse, error)
	GetVilla(ctx context.Context, id uint) (*dto.VillaResponse, error)
	CreateVilla(ctx context.Context, req dto.CreateVillaRequest) (*dto.VillaResponse, error)
	UpdateVilla(ctx context.Context, id uint, req *dto.UpdateVillaRequest) error
	PatchVilla(ctx context.Context, id uint, ops []dto.PatchOperation) error
	DeleteVilla(ctx context.Context, id uint) error
}

// villaService es la implementación real del servicio
type villaService struct {
	repo      repositories.VillaRepository
	publisher events.Publisher
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewVillaService crea una nueva instancia del servicio.
// Si publisher es nil no se publican eventos.
func NewVillaService(repo repositories.VillaRepository, publisher events.Publisher, logger zerolog.Logger) VillaService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &villaService{
		repo:      repo,
		publisher: publisher,
		validate:  NewValidator(),
		logger:    logger,
	}
}

// NewValidator crea un validator que entiende los mismos tags "binding" que
// usa gin, y que reporta los campos con su nombre json.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(errs.JSONFieldName)
	return v
}

// GetVillas devuelve todas las villas. Si no hay ninguna devuelve una lista vacía.
func (s *villaService) GetVillas(ctx context.Context) ([]dto.VillaResponse, error) {
	villas, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToVillaResponseList(villas), nil
}

// GetVilla obtiene una villa por su ID
func (s *villaService) GetVilla(ctx context.Context, id uint) (*dto.VillaResponse, error) {
	if id == 0 {
		return nil, errs.InvalidArgument("villa id must be greater than zero")
	}

	villa, err := s.findVilla(ctx, id, true)
	if err != nil {
		return nil, err
	}

	resp := dto.ToVillaResponse(*villa)
	return &resp, nil
}

// CreateVilla crea una villa nueva.
// El chequeo de nombre y el INSERT son dos viajes a la base sin transacción:
// dos creaciones concurrentes con el mismo nombre pueden pasar las dos.
func (s *villaService) CreateVilla(ctx context.Context, req dto.CreateVillaRequest) (*dto.VillaResponse, error) {
	// 1. Verificar que no exista otra villa con el mismo nombre
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repositories.ErrVillaNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.DuplicateName(req.Name)
	}

	// 2. Mapear el DTO al modelo y guardarlo
	villa := dto.CreateRequestToVilla(req)
	if err := s.repo.Create(ctx, &villa); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ActionCreate, villa.ID)

	// 3. Devolver la villa con el ID asignado
	resp := dto.ToVillaResponse(villa)
	return &resp, nil
}

// UpdateVilla reemplaza todos los campos de la villa con los del DTO
func (s *villaService) UpdateVilla(ctx context.Context, id uint, req *dto.UpdateVillaRequest) error {
	if req == nil || req.ID != id {
		return errs.InvalidArgument("body is required and its id must match the path id")
	}

	current, err := s.findVilla(ctx, id, false)
	if err != nil {
		return err
	}

	villa := dto.UpdateRequestToVilla(*req)
	villa.CreatedAt = current.CreatedAt
	if err := s.repo.Update(ctx, &villa); err != nil {
		return err
	}

	s.publish(ctx, events.ActionUpdate, villa.ID)
	return nil
}

// PatchVilla aplica las operaciones del patch sobre la villa actual y la
// guarda como un reemplazo completo
func (s *villaService) PatchVilla(ctx context.Context, id uint, ops []dto.PatchOperation) error {
	if id == 0 || ops == nil {
		return errs.InvalidArgument("villa id and patch document are required")
	}

	// 1. Leer la villa sin seguimiento de cambios
	current, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, repositories.ErrVillaNotFound) {
			return errs.InvalidArgument("villa does not exist")
		}
		return err
	}

	// 2. Convertir las operaciones y aplicarlas sobre una copia del DTO de update
	patch, err := DecodePatch(ops)
	if err != nil {
		return err
	}

	updated := dto.VillaToUpdateRequest(*current)
	ApplyPatch(&updated, patch)

	if updated.ID != id {
		return errs.InvalidArgument("villa id cannot be changed")
	}

	// 3. Validar el resultado con las mismas reglas que un PUT
	if err := s.validate.Struct(updated); err != nil {
		return errs.FromValidator(err)
	}

	// 4. Guardar como reemplazo completo
	villa := dto.UpdateRequestToVilla(updated)
	villa.CreatedAt = current.CreatedAt
	if err := s.repo.Update(ctx, &villa); err != nil {
		return err
	}

	s.publish(ctx, events.ActionUpdate, villa.ID)
	return nil
}

// DeleteVilla elimina una villa por su ID
func (s *villaService) DeleteVilla(ctx context.Context, id uint) error {
	if id == 0 {
		return errs.InvalidArgument("villa id must be greater than zero")
	}

	villa, err := s.findVilla(ctx, id, true)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, villa); err != nil {
		if errors.Is(err, repositories.ErrVillaNotFound) {
			return errs.NotFound("villa not found")
		}
		return err
	}

	s.publish(ctx, events.ActionDelete, villa.ID)
	return nil
}

// findVilla traduce ErrVillaNotFound del repositorio a un NOT_FOUND de la API
func (s *villaService) findVilla(ctx context.Context, id uint, tracked bool) (*domain.Villa, error) {
	villa, err := s.repo.GetByID(ctx, id, tracked)
	if err != nil {
		if errors.Is(err, repositories.ErrVillaNotFound) {
			return nil, errs.NotFound("villa not found")
		}
		return nil, err
	}
	return villa, nil
}

// publish no corta la operación si falla: la villa ya quedó guardada
func (s *villaService) publish(ctx context.Context, action events.Action, villaID uint) {
	event := events.NewVillaEvent(action, villaID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("action", string(action)).
			Uint("villa_id", villaID).
			Msg("failed to publish villa event")
	}
}
