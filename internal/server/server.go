package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"microdata/internal/handlers"
	"microdata/internal/middlewares"
	"microdata/internal/routes"
	"microdata/internal/services"
)

// NewRouter builds the gin engine serving the schema API.
func NewRouter(schemaService *services.SchemaService, allowOrigins []string) *gin.Engine {
	schemaHandler := handlers.NewSchemaHandler(schemaService)
	tableHandler := handlers.NewTableHandler(schemaService)

	router := gin.Default()
	router.Use(middlewares.RequestID)

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AddExposeHeaders(middlewares.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	routes.RegisterRoutes(router, schemaHandler, tableHandler)
	return router
}

func NewServer(app *App) *http.Server {
	router := NewRouter(app.SchemaService, app.Config.AllowOrigins)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
