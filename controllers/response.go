package controllers

import (
	"errors"
	"net/http"

	"villa-api/dto"
	"villa-api/errs"
	"villa-api/middleware"

	"github.com/gin-gonic/gin"
)

// respondError escribe el error con el status que le corresponde.
// Los errores internos se loguean y al cliente le llega un mensaje genérico.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := errs.HTTPStatus(err)

	var appErr *errs.AppError
	if status >= http.StatusInternalServerError || !errors.As(err, &appErr) {
		middleware.GetLogger(c).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   string(errs.CodeInternal),
			Message: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	resp := dto.ErrorResponse{
		Error:   string(appErr.Code),
		Message: appErr.Message,
	}
	for _, f := range appErr.Fields {
		resp.Errors = append(resp.Errors, dto.FieldError{Field: f.Field, Error: f.Error})
	}
	c.JSON(status, resp)
}
