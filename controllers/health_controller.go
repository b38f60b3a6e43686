package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController responde GET /health
type HealthController struct {
	service string
}

func NewHealthController(service string) *HealthController {
	return &HealthController{service: service}
}

// HealthCheck indica que el servicio está corriendo
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ctrl.service,
	})
}
