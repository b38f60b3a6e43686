package controllers

import (
	"reflect"

	"villa-api/errs"
	"villa-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// RouterConfig agrupa lo que necesita NewRouter
type RouterConfig struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	Villas             *VillaController
	Health             *HealthController
}

// NewRouter arma el engine de gin con los middlewares y las rutas
func NewRouter(cfg RouterConfig) *gin.Engine {
	registerJSONFieldNames()

	router := gin.New()
	router.Use(
		middleware.RequestLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	router.GET("/health", cfg.Health.HealthCheck)

	villas := router.Group("/villa")
	{
		villas.GET("", cfg.Villas.GetVillas)
		villas.GET("/:id", cfg.Villas.GetVilla)
		villas.POST("", cfg.Villas.CreateVilla)
		villas.PUT("/:id", cfg.Villas.UpdateVilla)
		villas.PATCH("/:id", cfg.Villas.PatchVilla)
		villas.DELETE("/:id", cfg.Villas.DeleteVilla)
	}

	return router
}

// registerJSONFieldNames hace que los errores del binding de gin usen el
// nombre json del campo ("image_url" en vez de "ImageURL")
func registerJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return errs.JSONFieldName(fld)
		})
	}
}
