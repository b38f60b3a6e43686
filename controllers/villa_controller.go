package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"villa-api/dto"
	"villa-api/errs"
	"villa-api/middleware"
	"villa-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// VillaController maneja los endpoints HTTP de villas
type VillaController struct {
	service services.VillaService
}

// NewVillaController crea una nueva instancia del controlador
func NewVillaController(service services.VillaService) *VillaController {
	return &VillaController{service: service}
}

// GetVillas maneja GET /villa
func (ctrl *VillaController) GetVillas(c *gin.Context) {
	middleware.GetLogger(c).Info().Msg("getting villas")

	villas, err := ctrl.service.GetVillas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, villas)
}

// GetVilla maneja GET /villa/:id
func (ctrl *VillaController) GetVilla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if id == 0 {
		middleware.GetLogger(c).Error().Uint("villa_id", id).Msg("error fetching villa with id 0")
	}

	villa, err := ctrl.service.GetVilla(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, villa)
}

// CreateVilla maneja POST /villa
func (ctrl *VillaController) CreateVilla(c *gin.Context) {
	// 1. Leer el JSON del body. Gin valida los tags "binding".
	var req dto.CreateVillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.FromValidator(err))
		return
	}

	// 2. Crear la villa (el servicio chequea el nombre duplicado)
	villa, err := ctrl.service.CreateVilla(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. 201 + Location apuntando al GET de la villa nueva
	c.Header("Location", fmt.Sprintf("/villa/%d", villa.ID))
	c.JSON(http.StatusCreated, villa)
}

// UpdateVilla maneja PUT /villa/:id (reemplazo completo)
func (ctrl *VillaController) UpdateVilla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// 1. Leer el body crudo: vacío o "null" es un body ausente
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, errs.InvalidArgument("could not read request body"))
		return
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		respondError(c, errs.InvalidArgument("request body is required"))
		return
	}

	// 2. Bindear y validar. Con "null" req queda en nil y el servicio lo rechaza.
	var req *dto.UpdateVillaRequest
	if !bytes.Equal(trimmed, []byte("null")) {
		req = &dto.UpdateVillaRequest{}
		if err := binding.JSON.BindBody(body, req); err != nil {
			respondError(c, errs.FromValidator(err))
			return
		}
	}

	if err := ctrl.service.UpdateVilla(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchVilla maneja PATCH /villa/:id
// El body es una lista de operaciones: [{"op":"replace","path":"/name","value":"..."}]
func (ctrl *VillaController) PatchVilla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var ops []dto.PatchOperation
	if err := c.ShouldBindJSON(&ops); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(c, errs.InvalidArgument("patch document is required"))
			return
		}
		respondError(c, errs.FromValidator(err))
		return
	}

	if err := ctrl.service.PatchVilla(c.Request.Context(), id, ops); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteVilla maneja DELETE /villa/:id
func (ctrl *VillaController) DeleteVilla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteVilla(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID lee el parámetro :id. Si no es un número responde 400 y devuelve ok=false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, errs.InvalidArgument("invalid villa id"))
		return 0, false
	}
	return uint(id), true
}
