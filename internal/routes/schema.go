package routes

import (
	"microdata/internal/handlers"

	"github.com/gin-gonic/gin"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	types := router.Group("/types")
	{
		types.GET("", r.handler.ListTypes)
		types.GET("/:type/schema", r.handler.PreviewSchema)
		types.GET("/:type/schema/visualize", r.handler.VisualizeSchema)
	}
}
