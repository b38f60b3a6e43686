package middleware

import (
	"net/http"
	"runtime/debug"

	"villa-api/dto"
	"villa-api/errs"

	"github.com/gin-gonic/gin"
)

// Recovery atrapa un panic en un handler y responde un 500 genérico
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger(c).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   string(errs.CodeInternal),
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}
		}()
		c.Next()
	}
}
